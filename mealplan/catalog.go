package mealplan

import "fittrack/backend/models"

// Catalog is the in-memory list of candidate meals per slot.
type Catalog struct {
	Breakfast []models.Meal
	Lunch     []models.Meal
	Dinner    []models.Meal
	Snacks    []models.Meal
}

// Days are the labels of a weekly plan, Monday first.
var Days = []string{"Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi", "Dimanche"}

var (
	vegan       = []models.CatalogDiet{models.CatalogVegan, models.CatalogVegetarian, models.CatalogPescatarian, models.CatalogHalal}
	veganGF     = append([]models.CatalogDiet{models.CatalogGlutenFree}, vegan...)
	vegetarian  = []models.CatalogDiet{models.CatalogVegetarian, models.CatalogPescatarian, models.CatalogHalal}
	vegetGF     = append([]models.CatalogDiet{models.CatalogGlutenFree}, vegetarian...)
	fish        = []models.CatalogDiet{models.CatalogPescatarian}
	fishGF      = []models.CatalogDiet{models.CatalogPescatarian, models.CatalogGlutenFree}
	halalMeat   = []models.CatalogDiet{models.CatalogHalal}
	halalMeatGF = []models.CatalogDiet{models.CatalogHalal, models.CatalogGlutenFree}
)

// DefaultCatalog returns the built-in catalog. The slices are fresh copies on
// every call.
func DefaultCatalog() Catalog {
	return Catalog{
		Breakfast: []models.Meal{
			{
				Name: "Omelette aux épinards", Emoji: "🍳", Calories: 350, Protein: 24, Carbs: 6, Fats: 25, PrepTime: 10,
				Ingredients:  []string{"3 œufs", "50g d'épinards frais", "20g de fromage râpé", "1 c. à café d'huile d'olive"},
				Instructions: []string{"Battre les œufs", "Faire revenir les épinards dans l'huile", "Verser les œufs, parsemer de fromage et plier"},
				Diets:        vegetGF,
			},
			{
				Name: "Porridge aux fruits rouges", Emoji: "🥣", Calories: 380, Protein: 12, Carbs: 60, Fats: 10, PrepTime: 10,
				Ingredients:  []string{"60g de flocons d'avoine", "250ml de lait d'amande", "100g de fruits rouges", "1 c. à soupe de sirop d'érable"},
				Instructions: []string{"Cuire les flocons dans le lait d'amande 5 minutes", "Ajouter les fruits rouges et le sirop"},
				Diets:        vegan,
			},
			{
				Name: "Yaourt grec, granola et miel", Emoji: "🍯", Calories: 420, Protein: 25, Carbs: 48, Fats: 14, PrepTime: 5,
				Ingredients:  []string{"200g de yaourt grec", "40g de granola", "1 c. à soupe de miel", "1 banane"},
				Instructions: []string{"Verser le yaourt dans un bol", "Ajouter le granola, la banane en rondelles et le miel"},
				Diets:        vegetarian,
			},
			{
				Name: "Tartine avocat et œuf poché", Emoji: "🥑", Calories: 450, Protein: 20, Carbs: 38, Fats: 24, PrepTime: 15,
				Ingredients:  []string{"2 tranches de pain complet", "1 avocat", "2 œufs", "Sel, poivre"},
				Instructions: []string{"Griller le pain", "Écraser l'avocat sur les tartines", "Pocher les œufs 3 minutes et les déposer dessus"},
				Diets:        vegetarian,
			},
			{
				Name: "Smoothie bowl protéiné", Emoji: "🍌", Calories: 320, Protein: 18, Carbs: 50, Fats: 6, PrepTime: 5,
				Ingredients:  []string{"1 banane", "100g de mangue", "200ml de boisson de soja", "30g de protéine végétale", "1 c. à soupe de graines de chia"},
				Instructions: []string{"Mixer la banane, la mangue, la boisson de soja et la protéine", "Parsemer de graines de chia"},
				Diets:        veganGF,
			},
			{
				Name: "Pancakes à la banane", Emoji: "🥞", Calories: 500, Protein: 22, Carbs: 70, Fats: 14, PrepTime: 20,
				Ingredients:  []string{"1 banane", "2 œufs", "50g de farine d'avoine", "100g de skyr"},
				Instructions: []string{"Écraser la banane et mélanger avec les œufs et la farine", "Cuire les pancakes à la poêle", "Servir avec le skyr"},
				Diets:        vegetarian,
			},
			{
				Name: "Bagel au saumon fumé", Emoji: "🥯", Calories: 480, Protein: 28, Carbs: 50, Fats: 17, PrepTime: 5,
				Ingredients:  []string{"1 bagel", "60g de saumon fumé", "30g de fromage frais", "Aneth"},
				Instructions: []string{"Toaster le bagel", "Tartiner de fromage frais", "Garnir de saumon et d'aneth"},
				Diets:        fish,
			},
		},
		Lunch: []models.Meal{
			{
				Name: "Bowl poulet quinoa", Emoji: "🥗", Calories: 620, Protein: 45, Carbs: 60, Fats: 20, PrepTime: 25,
				Ingredients:  []string{"150g de blanc de poulet", "80g de quinoa", "1 poivron rouge", "100g de concombre", "1 c. à soupe d'huile d'olive"},
				Instructions: []string{"Cuire le quinoa", "Griller le poulet en lanières", "Assembler avec les légumes crus et l'huile"},
				Diets:        halalMeatGF,
			},
			{
				Name: "Salade de lentilles et feta", Emoji: "🥙", Calories: 540, Protein: 26, Carbs: 55, Fats: 22, PrepTime: 15,
				Ingredients:  []string{"150g de lentilles cuites", "50g de feta", "1 tomate", "1/2 oignon rouge", "Vinaigrette"},
				Instructions: []string{"Couper la tomate et l'oignon", "Mélanger avec les lentilles", "Émietter la feta et assaisonner"},
				Diets:        vegetGF,
			},
			{
				Name: "Wrap de dinde et crudités", Emoji: "🌯", Calories: 560, Protein: 38, Carbs: 52, Fats: 18, PrepTime: 10,
				Ingredients:  []string{"1 galette de blé complet", "120g de blanc de dinde", "1 carotte râpée", "Salade verte", "1 c. à soupe de houmous"},
				Instructions: []string{"Tartiner la galette de houmous", "Garnir de dinde, carotte et salade", "Rouler serré"},
				Diets:        halalMeat,
			},
			{
				Name: "Buddha bowl au tofu", Emoji: "🍲", Calories: 580, Protein: 28, Carbs: 62, Fats: 22, PrepTime: 30,
				Ingredients:  []string{"150g de tofu ferme", "80g de riz complet", "100g de brocoli", "1 carotte", "1 c. à soupe de sauce soja"},
				Instructions: []string{"Cuire le riz", "Dorer le tofu à la poêle avec la sauce soja", "Cuire le brocoli à la vapeur et assembler"},
				Diets:        vegan,
			},
			{
				Name: "Poké bowl au thon", Emoji: "🐟", Calories: 650, Protein: 40, Carbs: 70, Fats: 18, PrepTime: 20,
				Ingredients:  []string{"120g de thon frais", "100g de riz à sushi", "1/2 avocat", "50g d'edamame", "1 c. à soupe de sauce soja"},
				Instructions: []string{"Cuire et assaisonner le riz", "Couper le thon en dés", "Disposer tous les éléments sur le riz"},
				Diets:        fish,
			},
			{
				Name: "Pâtes complètes au pesto et poulet", Emoji: "🍝", Calories: 720, Protein: 45, Carbs: 80, Fats: 22, PrepTime: 20,
				Ingredients:  []string{"100g de pâtes complètes", "120g de blanc de poulet", "2 c. à soupe de pesto", "10 tomates cerises"},
				Instructions: []string{"Cuire les pâtes", "Poêler le poulet", "Mélanger avec le pesto et les tomates coupées"},
				Diets:        halalMeat,
			},
			{
				Name: "Chili sin carne", Emoji: "🌶️", Calories: 600, Protein: 25, Carbs: 85, Fats: 14, PrepTime: 35,
				Ingredients:  []string{"150g de haricots rouges", "100g de maïs", "200g de tomates concassées", "1 oignon", "80g de riz"},
				Instructions: []string{"Faire revenir l'oignon", "Ajouter tomates, haricots et maïs, mijoter 20 minutes", "Servir avec le riz"},
				Diets:        veganGF,
			},
		},
		Dinner: []models.Meal{
			{
				Name: "Saumon au four et patate douce", Emoji: "🐠", Calories: 580, Protein: 38, Carbs: 45, Fats: 26, PrepTime: 35,
				Ingredients:  []string{"150g de pavé de saumon", "200g de patate douce", "150g de haricots verts", "1 c. à soupe d'huile d'olive"},
				Instructions: []string{"Rôtir la patate douce en cubes 20 minutes à 200°C", "Ajouter le saumon 12 minutes", "Cuire les haricots verts à la vapeur"},
				Diets:        fishGF,
			},
			{
				Name: "Curry de pois chiches", Emoji: "🍛", Calories: 550, Protein: 20, Carbs: 70, Fats: 18, PrepTime: 30,
				Ingredients:  []string{"200g de pois chiches", "200ml de lait de coco", "1 oignon", "100g d'épinards", "60g de riz basmati"},
				Instructions: []string{"Faire revenir l'oignon avec le curry", "Ajouter pois chiches et lait de coco, mijoter 15 minutes", "Incorporer les épinards, servir avec le riz"},
				Diets:        veganGF,
			},
			{
				Name: "Steak haché et purée maison", Emoji: "🥩", Calories: 650, Protein: 42, Carbs: 45, Fats: 32, PrepTime: 30,
				Ingredients:  []string{"150g de steak haché de bœuf", "250g de pommes de terre", "50ml de lait", "10g de beurre", "Salade verte"},
				Instructions: []string{"Cuire les pommes de terre à l'eau", "Écraser avec le lait et le beurre", "Saisir le steak 3 minutes par face"},
				Diets:        halalMeatGF,
			},
			{
				Name: "Poulet rôti et légumes", Emoji: "🍗", Calories: 600, Protein: 48, Carbs: 35, Fats: 28, PrepTime: 45,
				Ingredients:  []string{"180g de cuisse de poulet", "1 courgette", "1 poivron", "150g de pommes de terre", "Herbes de Provence"},
				Instructions: []string{"Couper les légumes", "Disposer avec le poulet sur une plaque", "Rôtir 40 minutes à 200°C"},
				Diets:        halalMeatGF,
			},
			{
				Name: "Omelette aux champignons", Emoji: "🍄", Calories: 420, Protein: 28, Carbs: 8, Fats: 30, PrepTime: 15,
				Ingredients:  []string{"3 œufs", "100g de champignons", "30g d'emmental", "Ciboulette"},
				Instructions: []string{"Poêler les champignons", "Ajouter les œufs battus", "Parsemer d'emmental et de ciboulette"},
				Diets:        vegetGF,
			},
			{
				Name: "Cabillaud et riz aux légumes", Emoji: "🍚", Calories: 520, Protein: 40, Carbs: 55, Fats: 12, PrepTime: 25,
				Ingredients:  []string{"150g de cabillaud", "80g de riz", "1 courgette", "1 carotte", "1 citron"},
				Instructions: []string{"Cuire le riz", "Faire sauter les légumes en dés", "Cuire le cabillaud à la poêle et arroser de citron"},
				Diets:        fishGF,
			},
			{
				Name: "Wok de tofu et nouilles", Emoji: "🥢", Calories: 560, Protein: 26, Carbs: 68, Fats: 18, PrepTime: 20,
				Ingredients:  []string{"150g de tofu", "80g de nouilles de riz", "1 poivron", "100g de pois gourmands", "1 c. à soupe de sauce soja"},
				Instructions: []string{"Réhydrater les nouilles", "Sauter le tofu et les légumes au wok", "Ajouter les nouilles et la sauce soja"},
				Diets:        vegan,
			},
		},
		Snacks: []models.Meal{
			{
				Name: "Pomme et purée de cacahuète", Emoji: "🍎", Calories: 200, Protein: 6, Carbs: 22, Fats: 10, PrepTime: 2,
				Ingredients:  []string{"1 pomme", "1 c. à soupe de purée de cacahuète"},
				Instructions: []string{"Couper la pomme en quartiers", "Servir avec la purée de cacahuète"},
				Diets:        veganGF,
			},
			{
				Name: "Yaourt nature et amandes", Emoji: "🥛", Calories: 180, Protein: 12, Carbs: 10, Fats: 9, PrepTime: 2,
				Ingredients:  []string{"125g de yaourt nature", "15g d'amandes"},
				Instructions: []string{"Parsemer le yaourt d'amandes concassées"},
				Diets:        vegetGF,
			},
			{
				Name: "Houmous et bâtonnets de carotte", Emoji: "🥕", Calories: 160, Protein: 6, Carbs: 18, Fats: 7, PrepTime: 5,
				Ingredients:  []string{"60g de houmous", "2 carottes"},
				Instructions: []string{"Tailler les carottes en bâtonnets", "Tremper dans le houmous"},
				Diets:        veganGF,
			},
			{
				Name: "Banane", Emoji: "🍌", Calories: 105, Protein: 1, Carbs: 27, Fats: 0, PrepTime: 0,
				Ingredients:  []string{"1 banane"},
				Instructions: []string{"Éplucher et déguster"},
				Diets:        veganGF,
			},
			{
				Name: "Fromage blanc et miel", Emoji: "🍯", Calories: 150, Protein: 14, Carbs: 18, Fats: 2, PrepTime: 2,
				Ingredients:  []string{"150g de fromage blanc 0%", "1 c. à café de miel"},
				Instructions: []string{"Mélanger le fromage blanc et le miel"},
				Diets:        vegetGF,
			},
			{
				Name: "Œuf dur", Emoji: "🥚", Calories: 80, Protein: 7, Carbs: 1, Fats: 5, PrepTime: 10,
				Ingredients:  []string{"1 œuf"},
				Instructions: []string{"Cuire l'œuf 9 minutes dans l'eau bouillante", "Refroidir et écaler"},
				Diets:        vegetGF,
			},
			{
				Name: "Mix de fruits secs", Emoji: "🥜", Calories: 250, Protein: 8, Carbs: 14, Fats: 18, PrepTime: 0,
				Ingredients:  []string{"30g de noix de cajou", "15g de raisins secs"},
				Instructions: []string{"Mélanger et portionner"},
				Diets:        veganGF,
			},
		},
	}
}
