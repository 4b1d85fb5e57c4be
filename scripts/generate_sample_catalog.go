package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// generateSampleCatalog writes a catalogue JSON file that mirrors the
// built-in menu and plan tables. Point CATALOG_SOURCE=file and
// CATALOG_PATH at the output to serve the catalogue from disk, or
// upload it to S3 and use CATALOG_SOURCE=s3.
func main() {
	dataDir := "data/catalog"

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	doc := map[string]interface{}{
		"currency": "SAR",
		"menu": []map[string]interface{}{
			{"id": "1", "category": "PASTA", "name": "White Sauce Pasta", "description": "Creamy, cheesy, and rich with a smooth finish", "price": 42},
			{"id": "2", "category": "PASTA", "name": "Red Sauce Pasta", "description": "Tangy tomato blend with herbs and seasoning", "price": 39},
			{"id": "3", "category": "PIZZA", "name": "Pepperoni Pizza", "description": "Crispy pepperoni layered over cheesy perfection", "price": 55},
			{"id": "4", "category": "PIZZA", "name": "Margarita Pizza", "description": "Classic tomato, mozzarella, and fresh basil combo", "price": 45},
			{"id": "5", "category": "SALAD", "name": "Halloumi Salad", "description": "Grilled halloumi on crisp greens and veggies", "price": 38},
			{"id": "6", "category": "SALAD", "name": "Italian Salad", "description": "Olives, cherry tomatoes, herbs, and vinaigrette dressing", "price": 35},
			{"id": "7", "category": "BREAD TOASTS", "name": "Chicken Cheese Garlic Bread", "description": "Cheesy garlic toast topped with tender chicken", "price": 32},
			{"id": "8", "category": "BREAD TOASTS", "name": "Cheese Garlic Bread", "description": "Crispy bread topped with gooey garlic cheese", "price": 28},
		},
		"plans": []map[string]interface{}{
			{
				"id":          "weight-loss",
				"name":        "Weight Loss",
				"calories":    "1200-1400 kcal",
				"description": "Designed for healthy weight management with portion-controlled, nutrient-dense meals",
				"basePrice":   299,
				"mealPlan":    map[string]string{"breakfast": "Halloumi Salad", "lunch": "Chicken Cheese Garlic Bread", "dinner": "Mix Veg Salad"},
			},
			{
				"id":          "balanced",
				"name":        "Balanced Nutrition",
				"calories":    "1500-1800 kcal",
				"description": "Perfect for maintaining a healthy lifestyle with well-balanced, delicious meals",
				"basePrice":   349,
				"popular":     true,
				"mealPlan":    map[string]string{"breakfast": "Italian Salad", "lunch": "Special Sauce Pasta", "dinner": "Pepperoni Pizza"},
			},
			{
				"id":          "muscle-gain",
				"name":        "Muscle Gain",
				"calories":    "2000-2500 kcal",
				"description": "High-protein meals designed to support muscle building and recovery",
				"basePrice":   399,
				"mealPlan":    map[string]string{"breakfast": "Egg Toast and Garlic Bread", "lunch": "Beef Ballistic Pizza", "dinner": "Beef Bolognese Spaghetti Pasta"},
			},
		},
		"addons": []map[string]interface{}{
			{"id": "snacks", "name": "Healthy Snacks", "description": "2 nutritious snacks per day", "price": 89},
			{"id": "detox", "name": "Detox Drinks", "description": "Daily cold-pressed juices", "price": 129},
			{"id": "supplements", "name": "Daily Supplements", "description": "Vitamins and minerals pack", "price": 159},
		},
	}

	filePath := filepath.Join(dataDir, "catalog.json")

	file, err := os.Create(filePath)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", filePath, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		log.Fatalf("Failed to write catalogue: %v", err)
	}

	fmt.Printf("Created %s\n", filePath)
	fmt.Println("\nServe it with:")
	fmt.Println("  CATALOG_SOURCE=file CATALOG_PATH=" + filePath)
}
