package catalog

import "github.com/verdant/gdn/internal/models"

var plants = []Plant{
	{ID: 1, Name: "Tomato", Emoji: "🍅", ScientificName: "Solanum lycopersicum", Category: PlantVegetable, Sun: "full-sun", Care: "medium", WaterEvery: 2,
		Seasons:     []models.Season{models.SeasonSpring, models.SeasonSummer},
		Description: "The backyard classic. Needs steady moisture and plenty of sun to set fruit."},
	{ID: 2, Name: "Lettuce", Emoji: "🥬", ScientificName: "Lactuca sativa", Category: PlantVegetable, Sun: "partial-shade", Care: "low", WaterEvery: 2,
		Seasons:     []models.Season{models.SeasonSpring, models.SeasonFall},
		Description: "Fast-growing cool-season green. Bolts in summer heat."},
	{ID: 3, Name: "Pepper", Emoji: "🫑", ScientificName: "Capsicum annuum", Category: PlantVegetable, Sun: "full-sun", Care: "medium", WaterEvery: 3,
		Seasons:     []models.Season{models.SeasonSummer},
		Description: "Sweet or hot, peppers love warmth and resent cold nights."},
	{ID: 4, Name: "Zucchini", Emoji: "🥒", ScientificName: "Cucurbita pepo", Category: PlantVegetable, Sun: "full-sun", Care: "low", WaterEvery: 2,
		Seasons:     []models.Season{models.SeasonSummer},
		Description: "Famously productive summer squash. One plant feeds a family."},
	{ID: 5, Name: "Cucumber", Emoji: "🥒", ScientificName: "Cucumis sativus", Category: PlantVegetable, Sun: "full-sun", Care: "medium", WaterEvery: 2,
		Seasons:     []models.Season{models.SeasonSummer},
		Description: "Vining climber that wants consistent water for crisp fruit."},
	{ID: 6, Name: "Carrot", Emoji: "🥕", ScientificName: "Daucus carota", Category: PlantVegetable, Sun: "full-sun", Care: "low", WaterEvery: 3,
		Seasons:     []models.Season{models.SeasonSpring, models.SeasonFall},
		Description: "Root crop for loose, stone-free soil. Sweetens after a light frost."},
	{ID: 7, Name: "Rose", Emoji: "🌹", ScientificName: "Rosa", Category: PlantFlower, Sun: "full-sun", Care: "high", WaterEvery: 3,
		Seasons:     []models.Season{models.SeasonSpring, models.SeasonSummer},
		Description: "The queen of the flower garden, and a magnet for aphids."},
	{ID: 8, Name: "Dahlia", Emoji: "🌺", ScientificName: "Dahlia pinnata", Category: PlantFlower, Sun: "full-sun", Care: "medium", WaterEvery: 3,
		Seasons:     []models.Season{models.SeasonSummer, models.SeasonFall},
		Description: "Showy tubers blooming from midsummer until frost."},
	{ID: 9, Name: "Sunflower", Emoji: "🌻", ScientificName: "Helianthus annuus", Category: PlantFlower, Sun: "full-sun", Care: "low", WaterEvery: 4,
		Seasons:     []models.Season{models.SeasonSummer},
		Description: "Fast, tall, and cheerful. Direct-sow after the last frost."},
	{ID: 10, Name: "Tulip", Emoji: "🌷", ScientificName: "Tulipa", Category: PlantFlower, Sun: "full-sun", Care: "low", WaterEvery: 7,
		Seasons:     []models.Season{models.SeasonSpring},
		Description: "Fall-planted bulbs for a burst of early spring color."},
	{ID: 11, Name: "Lavender", Emoji: "💜", ScientificName: "Lavandula angustifolia", Category: PlantHerb, Sun: "full-sun", Care: "low", WaterEvery: 7,
		Seasons:     []models.Season{models.SeasonSummer},
		Description: "Drought-tolerant Mediterranean herb. Overwatering is its enemy."},
	{ID: 12, Name: "Basil", Emoji: "🌿", ScientificName: "Ocimum basilicum", Category: PlantHerb, Sun: "full-sun", Care: "medium", WaterEvery: 2,
		Seasons:     []models.Season{models.SeasonSummer},
		Description: "Pinch flowers off to keep the leaves coming all summer."},
	{ID: 13, Name: "Mint", Emoji: "🍃", ScientificName: "Mentha", Category: PlantHerb, Sun: "partial-shade", Care: "low", WaterEvery: 2,
		Seasons:     []models.Season{models.SeasonSpring, models.SeasonSummer, models.SeasonFall},
		Description: "Vigorous to a fault. Grow in a pot unless you want a mint lawn."},
	{ID: 14, Name: "Rosemary", Emoji: "🌲", ScientificName: "Salvia rosmarinus", Category: PlantHerb, Sun: "full-sun", Care: "low", WaterEvery: 5,
		Seasons:     []models.Season{models.SeasonSpring, models.SeasonSummer, models.SeasonFall},
		Description: "Woody evergreen herb that prefers to dry out between waterings."},
	{ID: 15, Name: "Sage", Emoji: "🌱", ScientificName: "Salvia officinalis", Category: PlantHerb, Sun: "full-sun", Care: "low", WaterEvery: 4,
		Seasons:     []models.Season{models.SeasonSpring, models.SeasonSummer},
		Description: "Gray-green perennial herb, happiest in lean, well-drained soil."},
	{ID: 16, Name: "Strawberry", Emoji: "🍓", ScientificName: "Fragaria × ananassa", Category: PlantFruit, Sun: "full-sun", Care: "medium", WaterEvery: 2,
		Seasons:     []models.Season{models.SeasonSpring, models.SeasonSummer},
		Description: "Sweetest straight from the patch. Mulch to keep fruit clean."},
	{ID: 17, Name: "Blueberry", Emoji: "🫐", ScientificName: "Vaccinium corymbosum", Category: PlantFruit, Sun: "full-sun", Care: "high", WaterEvery: 3,
		Seasons:     []models.Season{models.SeasonSummer},
		Description: "Demands acidic soil. Plant two varieties for better pollination."},
	{ID: 18, Name: "Grape", Emoji: "🍇", ScientificName: "Vitis vinifera", Category: PlantFruit, Sun: "full-sun", Care: "high", WaterEvery: 5,
		Seasons:     []models.Season{models.SeasonSummer, models.SeasonFall},
		Description: "Long-lived vine that rewards patient pruning."},
	{ID: 19, Name: "Snake Plant", Emoji: "🪴", ScientificName: "Dracaena trifasciata", Category: PlantHouseplant, Sun: "low-light", Care: "low", WaterEvery: 14,
		Seasons:     []models.Season{models.SeasonSpring, models.SeasonSummer, models.SeasonFall, models.SeasonWinter},
		Description: "Nearly indestructible. Water rarely and it thrives on neglect."},
	{ID: 20, Name: "Orchid", Emoji: "🌸", ScientificName: "Phalaenopsis", Category: PlantHouseplant, Sun: "partial-shade", Care: "high", WaterEvery: 7,
		Seasons:     []models.Season{models.SeasonSpring, models.SeasonSummer, models.SeasonFall, models.SeasonWinter},
		Description: "Elegant bloomer that hates wet feet. Water with restraint."},
	{ID: 21, Name: "Aloe Vera", Emoji: "🌵", ScientificName: "Aloe barbadensis", Category: PlantHouseplant, Sun: "full-sun", Care: "low", WaterEvery: 14,
		Seasons:     []models.Season{models.SeasonSpring, models.SeasonSummer, models.SeasonFall, models.SeasonWinter},
		Description: "Succulent first-aid kit on a windowsill. Let the soil dry fully."},
	{ID: 22, Name: "Hosta", Emoji: "☘️", ScientificName: "Hosta", Category: PlantFlower, Sun: "low-light", Care: "low", WaterEvery: 4,
		Seasons:     []models.Season{models.SeasonSpring, models.SeasonSummer},
		Description: "The shade garden workhorse, beloved by slugs everywhere."},
	{ID: 23, Name: "Eggplant", Emoji: "🍆", ScientificName: "Solanum melongena", Category: PlantVegetable, Sun: "full-sun", Care: "medium", WaterEvery: 3,
		Seasons:     []models.Season{models.SeasonSummer},
		Description: "Heat lover in the tomato family. Needs a long warm season."},
	{ID: 24, Name: "Potato", Emoji: "🥔", ScientificName: "Solanum tuberosum", Category: PlantVegetable, Sun: "full-sun", Care: "medium", WaterEvery: 4,
		Seasons:     []models.Season{models.SeasonSpring, models.SeasonSummer},
		Description: "Hill the stems as they grow for a bigger harvest underground."},
}
