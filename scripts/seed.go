package main

import (
	"fmt"
	"log"
	"time"

	"github.com/Nithin-812/DabbaDash/config"
	"github.com/Nithin-812/DabbaDash/models"
)

var plans = []models.Plan{
	{
		Name:        models.PlanBasic,
		Price:       3000,
		Duration:    models.DurationMonthly,
		Description: "Homestyle veg tiffin, one curry and rice",
		Features:    []string{"Lunch & dinner", "1 curry + rice + roti", "Free delivery"},
	},
	{
		Name:        models.PlanPremium,
		Price:       4500,
		Duration:    models.DurationMonthly,
		Description: "Two curries, dessert on weekends",
		Features:    []string{"Lunch & dinner", "2 curries + rice + roti", "Weekend dessert", "Free delivery"},
	},
	{
		Name:        models.PlanExotic,
		Price:       6000,
		Duration:    models.DurationMonthly,
		Description: "Chef's specials and international dishes",
		Features:    []string{"Lunch & dinner", "Chef's specials", "International cuisine", "Weekend dessert", "Free delivery"},
	},
	{
		Name:        models.PlanBasic,
		Price:       30000,
		Duration:    models.DurationYearly,
		Description: "Homestyle veg tiffin, billed yearly",
		Features:    []string{"Lunch & dinner", "1 curry + rice + roti", "Free delivery", "2 months free"},
	},
}

var eventItems = []models.EventItem{
	{Name: "Paneer Tikka", Category: models.EventCategoryStarter, Price: 120, Description: "Char-grilled cottage cheese skewers"},
	{Name: "Hara Bhara Kabab", Category: models.EventCategoryStarter, Price: 90, Description: "Spinach and pea patties"},
	{Name: "Veg Spring Rolls", Category: models.EventCategoryStarter, Price: 80, Description: "Crispy rolls with sweet chilli dip"},
	{Name: "Paneer Butter Masala", Category: models.EventCategoryMainCourse, Price: 180, Description: "Rich tomato gravy"},
	{Name: "Dal Makhani", Category: models.EventCategoryMainCourse, Price: 150, Description: "Slow-cooked black lentils"},
	{Name: "Veg Biryani", Category: models.EventCategoryMainCourse, Price: 160, Description: "Fragrant basmati with seasonal vegetables"},
	{Name: "Gulab Jamun", Category: models.EventCategoryDessert, Price: 60, Description: "Two pieces with rose syrup"},
	{Name: "Gajar Ka Halwa", Category: models.EventCategoryDessert, Price: 70, Description: "Carrot pudding with nuts"},
	{Name: "Masala Chaas", Category: models.EventCategoryBeverage, Price: 40, Description: "Spiced buttermilk"},
	{Name: "Fresh Lime Soda", Category: models.EventCategoryBeverage, Price: 50, Description: "Sweet or salted"},
}

var lunchPool = [][]string{
	{"Dal Tadka", "Jeera Rice", "Roti", "Salad"},
	{"Rajma Masala", "Steamed Rice", "Roti", "Pickle"},
	{"Aloo Gobi", "Dal Fry", "Rice", "Roti"},
	{"Chana Masala", "Pulao", "Roti", "Raita"},
	{"Bhindi Masala", "Dal Palak", "Rice", "Roti"},
	{"Kadhi Pakora", "Steamed Rice", "Roti", "Papad"},
	{"Veg Kolhapuri", "Jeera Rice", "Roti", "Salad"},
}

var dinnerPool = [][]string{
	{"Palak Paneer", "Rice", "Roti", "Kheer"},
	{"Mix Veg", "Dal Tadka", "Rice", "Roti"},
	{"Malai Kofta", "Pulao", "Roti", "Salad"},
	{"Baingan Bharta", "Dal Fry", "Rice", "Roti"},
	{"Matar Paneer", "Jeera Rice", "Roti", "Raita"},
	{"Veg Handi", "Steamed Rice", "Roti", "Papad"},
	{"Paneer Do Pyaza", "Rice", "Roti", "Gulab Jamun"},
}

func main() {
	config.InitDB()
	db := config.DB

	// Plans
	for _, plan := range plans {
		var existing models.Plan
		if err := db.Where("name = ? AND duration = ?", plan.Name, plan.Duration).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&plan).Error; err != nil {
			log.Fatalf("Failed to seed plan %s/%s: %v", plan.Name, plan.Duration, err)
		}
		fmt.Printf("Seeded plan %s (%s)\n", plan.Name, plan.Duration)
	}

	// Event items
	for _, item := range eventItems {
		var existing models.EventItem
		if err := db.Where("name = ?", item.Name).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&item).Error; err != nil {
			log.Fatalf("Failed to seed event item %s: %v", item.Name, err)
		}
		fmt.Printf("Seeded event item %s\n", item.Name)
	}

	// Menus: the next 7 days for each tier
	tiers := []string{models.PlanBasic, models.PlanPremium, models.PlanExotic}
	today := time.Now()
	for i := 0; i < 7; i++ {
		day := today.AddDate(0, 0, i)
		date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		weekend := date.Weekday() == time.Saturday || date.Weekday() == time.Sunday
		for _, tier := range tiers {
			var existing models.Menu
			if err := db.Where("date = ? AND plan_type = ?", date, tier).First(&existing).Error; err == nil {
				continue
			}
			menu := models.Menu{
				Date:             date,
				PlanType:         tier,
				LunchItems:       lunchPool[i%len(lunchPool)],
				DinnerItems:      dinnerPool[i%len(dinnerPool)],
				IsWeekendSpecial: weekend,
			}
			if err := db.Create(&menu).Error; err != nil {
				log.Fatalf("Failed to seed menu for %s/%s: %v", date.Format("2006-01-02"), tier, err)
			}
		}
		fmt.Printf("Seeded menus for %s\n", date.Format("2006-01-02"))
	}

	fmt.Println("Seeding complete")
}
