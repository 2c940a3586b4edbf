package catalog

import "github.com/verdant/gdn/internal/models"

var pests = []Pest{
	{
		ID: 1, Name: "Aphids", Emoji: "🐛", Severity: models.SeverityModerate,
		Description: "Tiny soft-bodied insects that cluster on new growth, sucking plant sap.",
		Symptoms:    []string{"Curling or yellowing leaves", "Sticky honeydew residue", "Stunted growth", "Sooty mold on leaves"},
		Prevention:  []string{"Encourage ladybugs and lacewings", "Use reflective mulch", "Inspect plants regularly", "Avoid over-fertilizing with nitrogen"},
		Treatment:   []string{"Spray with strong water stream", "Apply neem oil", "Use insecticidal soap", "Release beneficial insects"},
		AffectedPlants: []string{"Rose", "Tomato", "Pepper", "Lettuce", "Most garden plants"},
		Seasons:        []models.Season{models.SeasonSpring, models.SeasonSummer},
	},
	{
		ID: 2, Name: "Powdery Mildew", Emoji: "🍄", Severity: models.SeverityModerate,
		Description: "Fungal disease appearing as white powdery coating on leaves and stems.",
		Symptoms:    []string{"White powdery spots on leaves", "Leaf yellowing and curling", "Distorted new growth", "Premature leaf drop"},
		Prevention:  []string{"Ensure good air circulation", "Avoid overhead watering", "Space plants properly", "Choose resistant varieties"},
		Treatment:   []string{"Apply sulfur-based fungicide", "Spray milk solution (1:9 ratio)", "Remove affected leaves", "Use baking soda spray"},
		AffectedPlants: []string{"Zucchini", "Cucumber", "Rose", "Sage", "Dahlia"},
		Seasons:        []models.Season{models.SeasonSummer, models.SeasonFall},
	},
	{
		ID: 3, Name: "Slugs & Snails", Emoji: "🐌", Severity: models.SeverityLow,
		Description: "Mollusks that feed at night, leaving irregular holes and slime trails on plants.",
		Symptoms:    []string{"Irregular holes in leaves", "Slime trails on soil and plants", "Seedling damage overnight", "Damage to low-hanging fruit"},
		Prevention:  []string{"Remove hiding spots (boards, debris)", "Water in morning not evening", "Use copper tape barriers", "Encourage ground beetles"},
		Treatment:   []string{"Handpick at night with flashlight", "Beer traps", "Iron phosphate bait", "Diatomaceous earth around plants"},
		AffectedPlants: []string{"Lettuce", "Strawberry", "Basil", "Dahlia", "Hosta"},
		Seasons:        []models.Season{models.SeasonSpring, models.SeasonSummer, models.SeasonFall},
	},
	{
		ID: 4, Name: "Tomato Hornworm", Emoji: "🐛", Severity: models.SeverityHigh,
		Description: "Large green caterpillars that can defoliate tomato plants quickly.",
		Symptoms:    []string{"Large sections of leaves eaten", "Dark droppings on leaves", "Stripped stems", "Damage to green fruit"},
		Prevention:  []string{"Till soil in fall to destroy pupae", "Plant dill to attract parasitic wasps", "Rotate crops annually", "Inspect plants daily"},
		Treatment:   []string{"Handpick and destroy", "Apply Bt (Bacillus thuringiensis)", "Encourage parasitic wasps", "Use black UV lights at night to spot them"},
		AffectedPlants: []string{"Tomato", "Pepper", "Eggplant", "Potato"},
		Seasons:        []models.Season{models.SeasonSummer},
	},
	{
		ID: 5, Name: "Japanese Beetles", Emoji: "🪲", Severity: models.SeverityHigh,
		Description: "Metallic green beetles that skeletonize leaves and damage flowers.",
		Symptoms:    []string{"Skeletonized leaves (veins remain)", "Damaged flowers and buds", "Brown patches in lawn (grub damage)", "Groups of beetles on plants"},
		Prevention:  []string{"Apply milky spore to lawn for grubs", "Use row covers", "Plant resistant varieties", "Avoid traps near garden"},
		Treatment:   []string{"Handpick into soapy water", "Apply neem oil", "Use pheromone traps away from garden", "Treat lawn with beneficial nematodes"},
		AffectedPlants: []string{"Rose", "Japanese Maple", "Grape", "Linden", "Hibiscus"},
		Seasons:        []models.Season{models.SeasonSummer},
	},
	{
		ID: 6, Name: "Spider Mites", Emoji: "🕷️", Severity: models.SeverityModerate,
		Description: "Tiny arachnids that cause stippled, faded leaves. Thrive in hot, dry conditions.",
		Symptoms:    []string{"Fine webbing on undersides of leaves", "Stippled or speckled leaves", "Yellowing and bronzing", "Leaf drop in severe cases"},
		Prevention:  []string{"Maintain humidity around plants", "Keep plants well-watered", "Avoid dusty conditions", "Encourage predatory mites"},
		Treatment:   []string{"Spray leaves with water forcefully", "Apply miticide or neem oil", "Use insecticidal soap", "Release predatory mites"},
		AffectedPlants: []string{"Rosemary", "Mint", "Rose", "Snake Plant", "Orchid"},
		Seasons:        []models.Season{models.SeasonSummer},
	},
	{
		ID: 7, Name: "Root Rot", Emoji: "🦠", Severity: models.SeverityHigh,
		Description: "Fungal disease caused by overwatering, leading to decay of roots.",
		Symptoms:    []string{"Wilting despite moist soil", "Yellowing lower leaves", "Mushy brown roots", "Foul smell from soil"},
		Prevention:  []string{"Ensure proper drainage", "Don't overwater", "Use well-draining soil mix", "Allow soil to dry between waterings"},
		Treatment:   []string{"Remove plant and trim dead roots", "Repot in fresh, sterile soil", "Reduce watering frequency", "Apply fungicide to remaining roots"},
		AffectedPlants: []string{"Orchid", "Succulent", "Aloe Vera", "Snake Plant", "Lavender"},
		Seasons:        []models.Season{models.SeasonSpring, models.SeasonSummer, models.SeasonFall, models.SeasonWinter},
	},
	{
		ID: 8, Name: "Blossom End Rot", Emoji: "🟤", Severity: models.SeverityModerate,
		Description: "Dark, sunken spots on the bottom of fruit caused by calcium imbalance.",
		Symptoms:    []string{"Dark, leathery patches on fruit bottom", "Sunken, watery areas", "Affects first fruits most", "Not a spreading disease"},
		Prevention:  []string{"Maintain consistent watering", "Add calcium to soil before planting", "Mulch to retain moisture", "Avoid excessive nitrogen"},
		Treatment:   []string{"Remove affected fruit", "Water deeply and regularly", "Add calcium foliar spray", "Mulch around plants"},
		AffectedPlants: []string{"Tomato", "Pepper", "Zucchini", "Eggplant"},
		Seasons:        []models.Season{models.SeasonSummer},
	},
}
