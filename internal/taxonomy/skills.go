package taxonomy

// SkillTree returns the shipped skill taxonomy: what a registered agent
// can do. Top-level categories group related capabilities; children are
// the specific skills agents declare.
func SkillTree() *Tree {
	return &Tree{
		Version: Version,
		Categories: []Category{
			{
				ID:          1,
				Slug:        "natural_language_processing",
				Name:        "Natural Language Processing",
				Description: "Understanding, transforming, and generating human language.",
				Children: []Category{
					{ID: 2, Slug: "text_generation", Name: "Text Generation", ParentID: 1},
					{ID: 3, Slug: "sentiment_analysis", Name: "Sentiment Analysis", ParentID: 1},
					{ID: 4, Slug: "translation", Name: "Translation", ParentID: 1},
					{ID: 5, Slug: "summarization", Name: "Summarization", ParentID: 1},
					{ID: 6, Slug: "question_answering", Name: "Question Answering", ParentID: 1},
					{ID: 7, Slug: "entity_extraction", Name: "Entity Extraction", ParentID: 1},
				},
			},
			{
				ID:          8,
				Slug:        "computer_vision",
				Name:        "Computer Vision",
				Description: "Interpreting and producing images and video.",
				Children: []Category{
					{ID: 9, Slug: "image_classification", Name: "Image Classification", ParentID: 8},
					{ID: 10, Slug: "object_detection", Name: "Object Detection", ParentID: 8},
					{ID: 11, Slug: "image_generation", Name: "Image Generation", ParentID: 8},
					{ID: 12, Slug: "ocr", Name: "Optical Character Recognition", ParentID: 8},
				},
			},
			{
				ID:          13,
				Slug:        "data_analysis",
				Name:        "Data Analysis",
				Description: "Extracting insight from structured and unstructured data.",
				Children: []Category{
					{ID: 14, Slug: "statistical_modeling", Name: "Statistical Modeling", ParentID: 13},
					{ID: 15, Slug: "forecasting", Name: "Forecasting", ParentID: 13},
					{ID: 16, Slug: "anomaly_detection", Name: "Anomaly Detection", ParentID: 13},
					{ID: 17, Slug: "data_visualization", Name: "Data Visualization", ParentID: 13},
				},
			},
			{
				ID:          18,
				Slug:        "trading",
				Name:        "Trading",
				Description: "Autonomous execution of market strategies.",
				Children: []Category{
					{ID: 19, Slug: "market_making", Name: "Market Making", ParentID: 18},
					{ID: 20, Slug: "arbitrage", Name: "Arbitrage", ParentID: 18},
					{ID: 21, Slug: "portfolio_management", Name: "Portfolio Management", ParentID: 18},
					{ID: 22, Slug: "risk_assessment", Name: "Risk Assessment", ParentID: 18},
					{ID: 23, Slug: "liquidity_provision", Name: "Liquidity Provision", ParentID: 18},
				},
			},
			{
				ID:          24,
				Slug:        "automation",
				Name:        "Automation",
				Description: "Running recurring work without human intervention.",
				Children: []Category{
					{ID: 25, Slug: "workflow_orchestration", Name: "Workflow Orchestration", ParentID: 24},
					{ID: 26, Slug: "scheduling", Name: "Scheduling", ParentID: 24},
					{ID: 27, Slug: "monitoring", Name: "Monitoring", ParentID: 24},
					{ID: 28, Slug: "notification", Name: "Notification", ParentID: 24},
				},
			},
			{
				ID:          29,
				Slug:        "smart_contracts",
				Name:        "Smart Contracts",
				Description: "Working with on-chain programs across supported networks.",
				Children: []Category{
					{ID: 30, Slug: "contract_auditing", Name: "Contract Auditing", ParentID: 29},
					{ID: 31, Slug: "contract_deployment", Name: "Contract Deployment", ParentID: 29},
					{ID: 32, Slug: "oracle_services", Name: "Oracle Services", ParentID: 29},
					{ID: 33, Slug: "transaction_simulation", Name: "Transaction Simulation", ParentID: 29},
				},
			},
			{
				ID:          34,
				Slug:        "social",
				Name:        "Social",
				Description: "Producing and curating content for online communities.",
				Children: []Category{
					{ID: 35, Slug: "content_creation", Name: "Content Creation", ParentID: 34},
					{ID: 36, Slug: "community_management", Name: "Community Management", ParentID: 34},
					{ID: 37, Slug: "moderation", Name: "Moderation", ParentID: 34},
				},
			},
			{
				ID:          38,
				Slug:        "search_retrieval",
				Name:        "Search & Retrieval",
				Description: "Finding and ranking relevant information on demand.",
				Children: []Category{
					{ID: 39, Slug: "web_scraping", Name: "Web Scraping", ParentID: 38},
					{ID: 40, Slug: "semantic_search", Name: "Semantic Search", ParentID: 38},
					{ID: 41, Slug: "recommendation", Name: "Recommendation", ParentID: 38},
				},
			},
			{
				ID:          42,
				Slug:        "planning",
				Name:        "Planning & Reasoning",
				Description: "Decomposing goals into executable steps.",
				Children: []Category{
					{ID: 43, Slug: "task_decomposition", Name: "Task Decomposition", ParentID: 42},
					{ID: 44, Slug: "goal_planning", Name: "Goal Planning", ParentID: 42},
					{ID: 45, Slug: "multi_agent_coordination", Name: "Multi-Agent Coordination", ParentID: 42},
				},
			},
			{
				ID:          46,
				Slug:        "speech",
				Name:        "Speech",
				Description: "Converting between spoken and written language.",
				Children: []Category{
					{ID: 47, Slug: "speech_recognition", Name: "Speech Recognition", ParentID: 46},
					{ID: 48, Slug: "speech_synthesis", Name: "Speech Synthesis", ParentID: 46},
				},
			},
			{
				ID:          49,
				Slug:        "code_generation",
				Name:        "Code Generation",
				Description: "Writing, reviewing, and repairing software.",
			},
		},
	}
}
