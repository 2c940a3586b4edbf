package catalog

var tips = []Tip{
	{
		ID: 1, Title: "Know Your Hardiness Zone", Category: TipBeginner, Season: "all", Emoji: "🗺️",
		Content: "Understanding your USDA hardiness zone is the first step to successful gardening. It tells you which plants will thrive in your climate and when to plant them.",
		Steps:   []string{"Find your zone at planthardiness.ars.usda.gov", "Match plants to your zone before purchasing", "Note your first and last frost dates", "Keep a micro-climate journal for your specific garden"},
	},
	{
		ID: 2, Title: "Water Wisely: Morning is Best", Category: TipBeginner, Season: "summer", Emoji: "💧",
		Content: "Watering in the early morning gives plants time to absorb moisture before the heat of the day. Evening watering can lead to fungal problems as moisture sits overnight.",
		Steps:   []string{"Water between 6-10 AM", "Water at the base, not leaves", "Use soaker hoses or drip irrigation", "Check soil moisture before watering"},
	},
	{
		ID: 3, Title: "Companion Planting Guide", Category: TipIntermediate, Season: "spring", Emoji: "🤝",
		Content: "Some plants grow better together! Companion planting can improve pollination, deter pests, and make efficient use of garden space.",
		Steps:   []string{"Plant basil near tomatoes to repel flies", "Grow marigolds throughout your garden for pest control", "Pair carrots with onions, each deters the other's pests", "Avoid planting dill near carrots"},
	},
	{
		ID: 4, Title: "Composting 101", Category: TipBeginner, Season: "all", Emoji: "♻️",
		Content: "Composting transforms kitchen scraps and yard waste into nutrient-rich soil amendment. It's the single best thing you can do for your garden's health.",
		Steps:   []string{"Set up a bin in a shady spot", "Layer greens (nitrogen) and browns (carbon) 1:3", "Keep moist like a wrung-out sponge", "Turn weekly for faster decomposition"},
	},
	{
		ID: 5, Title: "Succession Planting for Continuous Harvest", Category: TipIntermediate, Season: "spring", Emoji: "🔄",
		Content: "Instead of planting all your seeds at once, stagger plantings every 2-3 weeks. This ensures a steady supply of fresh produce throughout the season.",
		Steps:   []string{"Start with lettuce, radishes, and beans", "Plant new rows every 2-3 weeks", "Note days-to-harvest on seed packets", "Calculate backward from your first frost date"},
	},
	{
		ID: 6, Title: "Preparing Your Garden for Winter", Category: TipSeasonal, Season: "fall", Emoji: "❄️",
		Content: "Proper fall preparation protects your garden through winter and gives you a head start in spring.",
		Steps:   []string{"Remove dead plants and debris", "Plant garlic and cover crops", "Apply compost and mulch", "Clean and store tools properly", "Protect perennials with mulch blankets"},
	},
	{
		ID: 7, Title: "Natural Pest Control Methods", Category: TipIntermediate, Season: "summer", Emoji: "🐞",
		Content: "Chemical pesticides can harm beneficial insects and pollinators. Natural methods are safer for your garden ecosystem.",
		Steps:   []string{"Attract beneficial insects with diverse plantings", "Use neem oil for soft-bodied pests", "Apply diatomaceous earth around plants", "Handpick larger pests", "Install bird houses for natural pest control"},
	},
	{
		ID: 8, Title: "Soil Testing and Amendment", Category: TipAdvanced, Season: "spring", Emoji: "🧪",
		Content: "Healthy soil is the foundation of a great garden. Testing your soil helps you understand what amendments are needed for optimal plant growth.",
		Steps:   []string{"Get a soil test kit from your extension office", "Test pH, nitrogen, phosphorus, and potassium", "Amend clay soil with compost and gypsum", "Add lime to raise pH, sulfur to lower it"},
	},
	{
		ID: 9, Title: "Mulching Mastery", Category: TipBeginner, Season: "spring", Emoji: "🍂",
		Content: "A 2-3 inch layer of mulch conserves moisture, suppresses weeds, and regulates soil temperature. It's one of the easiest ways to improve your garden.",
		Steps:   []string{"Apply 2-3 inches of organic mulch", "Keep mulch 2 inches from plant stems", "Replenish mulch as it decomposes", "Use shredded leaves, straw, or wood chips"},
	},
	{
		ID: 10, Title: "Pruning for Better Growth", Category: TipIntermediate, Season: "spring", Emoji: "✂️",
		Content: "Proper pruning encourages healthy growth, better air circulation, and more flowers and fruit. The key is knowing when and how much to cut.",
		Steps:   []string{"Prune spring bloomers after they flower", "Prune summer bloomers in late winter", "Always use clean, sharp tools", "Remove dead, damaged, and crossing branches first"},
	},
	{
		ID: 11, Title: "Starting Seeds Indoors", Category: TipBeginner, Season: "winter", Emoji: "🌱",
		Content: "Getting a jump on the growing season by starting seeds indoors gives your plants extra weeks of growth before transplanting outside.",
		Steps:   []string{"Start 6-8 weeks before last frost", "Use seed starting mix, not garden soil", "Provide consistent moisture and warmth", "Harden off seedlings before transplanting"},
	},
	{
		ID: 12, Title: "Building Raised Beds", Category: TipAdvanced, Season: "spring", Emoji: "🪵",
		Content: "Raised beds offer better drainage, easier access, fewer weeds, and the ability to customize your soil. They're perfect for beginners and experienced gardeners alike.",
		Steps:   []string{"Choose untreated cedar or composite lumber", "Build beds 4 feet wide for easy reach", "Fill with a mix of topsoil, compost, and peat", "Position beds in a sunny location"},
	},
}
