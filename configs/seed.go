package configs

import (
	"log"

	"github.com/Niksiiii/BuConnect/entity"
)

// SeedCatalog loads the static reference data: campus food vendors, their
// menus, and the laundry price list. The ordering flows never write any of
// it.
func SeedCatalog() error {
	db := DB()

	for _, v := range foodVendors {
		if err := db.Where(entity.FoodVendor{ID: v.ID}).FirstOrCreate(&v).Error; err != nil {
			return err
		}
	}
	for _, m := range menuItems {
		if err := db.Where(entity.MenuItem{ID: m.ID}).FirstOrCreate(&m).Error; err != nil {
			return err
		}
	}
	for _, it := range laundryItems {
		if err := db.Where(entity.LaundryItem{ID: it.ID}).FirstOrCreate(&it).Error; err != nil {
			return err
		}
	}

	log.Println("✅ catalog seeded")
	return nil
}

var foodVendors = []entity.FoodVendor{
	{ID: "mblock-mess", Name: "M Block Mess", Description: "The main campus mess offering a variety of meal options for students", Categories: "North Indian,South Indian,Chinese", OpeningHours: "7:00 AM - 10:00 PM", Location: "M Block, Ground Floor"},
	{ID: "hotspot", Name: "Hotspot", Description: "Popular hangout spot offering quick bites and refreshments", Categories: "Fast Food,Beverages,Snacks", OpeningHours: "9:00 AM - 11:00 PM", Location: "Academic Block, First Floor"},
	{ID: "quench", Name: "Quench", Description: "Refreshing beverages and smoothies to quench your thirst", Categories: "Beverages,Smoothies,Shakes", OpeningHours: "8:00 AM - 8:00 PM", Location: "Sports Complex"},
	{ID: "kathi", Name: "Kathi", Description: "Delicious rolls and wraps perfect for on-the-go meals", Categories: "Rolls,Wraps,Fast Food", OpeningHours: "11:00 AM - 10:00 PM", Location: "Food Court, Second Floor"},
	{ID: "dominoes", Name: "Dominoes", Description: "Pizza and pasta options for those craving Italian flavors", Categories: "Pizza,Pasta,Italian", OpeningHours: "11:00 AM - 10:00 PM", Location: "Food Court, Ground Floor"},
	{ID: "smapeats", Name: "Smapeats", Description: "Homestyle meals and comfort food at affordable prices", Categories: "Home Style,North Indian,Thali", OpeningHours: "9:00 AM - 9:00 PM", Location: "D Block, Ground Floor"},
	{ID: "southern-stories", Name: "Southern Stories", Description: "Authentic South Indian cuisine offering dosas, idlis, and more", Categories: "South Indian,Dosa,Idli", OpeningHours: "7:30 AM - 9:30 PM", Location: "C Block, First Floor"},
}

var menuItems = []entity.MenuItem{
	// M Block Mess
	{ID: "mm-1", VendorID: "mblock-mess", Name: "Veg Thali", Description: "Complete meal with roti, rice, dal, sabzi, raita, and salad", Price: 120, Category: "North Indian", IsVeg: true, IsAvailable: true},
	{ID: "mm-2", VendorID: "mblock-mess", Name: "Non-Veg Thali", Description: "Complete meal with roti, rice, dal, chicken curry, and salad", Price: 150, Category: "North Indian", IsVeg: false, IsAvailable: true},
	{ID: "mm-3", VendorID: "mblock-mess", Name: "Masala Dosa", Description: "Crispy dosa filled with spiced potato filling, served with sambar and chutney", Price: 80, Category: "South Indian", IsVeg: true, IsAvailable: true},
	{ID: "mm-4", VendorID: "mblock-mess", Name: "Chilli Chicken", Description: "Spicy Indo-Chinese style chicken", Price: 120, Category: "Chinese", IsVeg: false, IsAvailable: true},
	{ID: "mm-5", VendorID: "mblock-mess", Name: "Veg Fried Rice", Description: "Stir-fried rice with mixed vegetables", Price: 90, Category: "Chinese", IsVeg: true, IsAvailable: true},

	// Hotspot
	{ID: "hs-1", VendorID: "hotspot", Name: "Veg Burger", Description: "Crispy veg patty with fresh vegetables and special sauce", Price: 70, Category: "Fast Food", IsVeg: true, IsAvailable: true},
	{ID: "hs-2", VendorID: "hotspot", Name: "Chicken Burger", Description: "Grilled chicken patty with lettuce, cheese, and mayo", Price: 90, Category: "Fast Food", IsVeg: false, IsAvailable: true},
	{ID: "hs-3", VendorID: "hotspot", Name: "French Fries", Description: "Crispy golden fries with seasoning", Price: 60, Category: "Snacks", IsVeg: true, IsAvailable: true},
	{ID: "hs-4", VendorID: "hotspot", Name: "Cold Coffee", Description: "Refreshing cold coffee with ice cream", Price: 80, Category: "Beverages", IsVeg: true, IsAvailable: true},
	{ID: "hs-5", VendorID: "hotspot", Name: "Nachos", Description: "Crispy nachos with cheese sauce and salsa", Price: 100, Category: "Snacks", IsVeg: true, IsAvailable: true},

	// Quench
	{ID: "qu-1", VendorID: "quench", Name: "Fresh Fruit Juice", Description: "Choice of seasonal fruits blended fresh", Price: 60, Category: "Beverages", IsVeg: true, IsAvailable: true},
	{ID: "qu-2", VendorID: "quench", Name: "Chocolate Shake", Description: "Rich chocolate shake with ice cream", Price: 90, Category: "Shakes", IsVeg: true, IsAvailable: true},
	{ID: "qu-3", VendorID: "quench", Name: "Mixed Fruit Smoothie", Description: "Blend of seasonal fruits with yogurt", Price: 100, Category: "Smoothies", IsVeg: true, IsAvailable: true},
	{ID: "qu-4", VendorID: "quench", Name: "Oreo Shake", Description: "Creamy shake loaded with oreo cookies", Price: 110, Category: "Shakes", IsVeg: true, IsAvailable: true},
	{ID: "qu-5", VendorID: "quench", Name: "Green Detox Juice", Description: "Healthy blend of green vegetables and fruits", Price: 80, Category: "Beverages", IsVeg: true, IsAvailable: true},

	// Kathi
	{ID: "kt-1", VendorID: "kathi", Name: "Paneer Kathi Roll", Description: "Spiced paneer wrapped in a flaky paratha", Price: 90, Category: "Rolls", IsVeg: true, IsAvailable: true},
	{ID: "kt-2", VendorID: "kathi", Name: "Chicken Kathi Roll", Description: "Juicy chicken pieces wrapped in a flaky paratha", Price: 110, Category: "Rolls", IsVeg: false, IsAvailable: true},
	{ID: "kt-3", VendorID: "kathi", Name: "Egg Roll", Description: "Egg wrapped in a paratha with onions and sauces", Price: 80, Category: "Rolls", IsVeg: false, IsAvailable: true},
	{ID: "kt-4", VendorID: "kathi", Name: "Aloo Tikki Wrap", Description: "Crispy potato patty wrapped with chutneys", Price: 70, Category: "Wraps", IsVeg: true, IsAvailable: true},
	{ID: "kt-5", VendorID: "kathi", Name: "Noodle Roll", Description: "Stir-fried noodles wrapped in a paratha", Price: 100, Category: "Rolls", IsVeg: true, IsAvailable: true},

	// Dominoes
	{ID: "dm-1", VendorID: "dominoes", Name: "Margherita Pizza", Description: "Classic cheese pizza with tomato sauce", Price: 180, Category: "Pizza", IsVeg: true, IsAvailable: true},
	{ID: "dm-2", VendorID: "dominoes", Name: "Chicken Supreme Pizza", Description: "Loaded with chicken toppings and extra cheese", Price: 250, Category: "Pizza", IsVeg: false, IsAvailable: true},
	{ID: "dm-3", VendorID: "dominoes", Name: "Pasta Alfredo", Description: "Creamy white sauce pasta with vegetables", Price: 160, Category: "Pasta", IsVeg: true, IsAvailable: true},
	{ID: "dm-4", VendorID: "dominoes", Name: "Garlic Breadsticks", Description: "Freshly baked breadsticks with garlic butter", Price: 120, Category: "Italian", IsVeg: true, IsAvailable: true},
	{ID: "dm-5", VendorID: "dominoes", Name: "Pasta Arrabiata", Description: "Spicy red sauce pasta with herbs", Price: 150, Category: "Pasta", IsVeg: true, IsAvailable: true},

	// Smapeats
	{ID: "sm-1", VendorID: "smapeats", Name: "Rajma Chawal", Description: "Kidney bean curry served with steamed rice", Price: 90, Category: "North Indian", IsVeg: true, IsAvailable: true},
	{ID: "sm-2", VendorID: "smapeats", Name: "Special Thali", Description: "Grand thali with paneer, dal, rice, roti and dessert", Price: 150, Category: "Thali", IsVeg: true, IsAvailable: true},
	{ID: "sm-3", VendorID: "smapeats", Name: "Chole Bhature", Description: "Spicy chickpea curry with fried bread", Price: 100, Category: "North Indian", IsVeg: true, IsAvailable: true},
	{ID: "sm-4", VendorID: "smapeats", Name: "Paneer Butter Masala", Description: "Cottage cheese in rich tomato gravy", Price: 120, Category: "North Indian", IsVeg: true, IsAvailable: true},
	{ID: "sm-5", VendorID: "smapeats", Name: "Dal Makhani", Description: "Slow-cooked black lentils in creamy gravy", Price: 100, Category: "North Indian", IsVeg: true, IsAvailable: true},

	// Southern Stories
	{ID: "ss-1", VendorID: "southern-stories", Name: "Plain Dosa", Description: "Crispy rice crepe served with sambar and chutney", Price: 70, Category: "Dosa", IsVeg: true, IsAvailable: true},
	{ID: "ss-2", VendorID: "southern-stories", Name: "Idli Sambar", Description: "Steamed rice cakes with sambar and chutney", Price: 60, Category: "Idli", IsVeg: true, IsAvailable: true},
	{ID: "ss-3", VendorID: "southern-stories", Name: "Mysore Masala Dosa", Description: "Dosa with spicy red chutney and potato filling", Price: 100, Category: "Dosa", IsVeg: true, IsAvailable: true},
	{ID: "ss-4", VendorID: "southern-stories", Name: "Rava Onion Uttapam", Description: "Semolina pancake topped with onions and vegetables", Price: 90, Category: "South Indian", IsVeg: true, IsAvailable: true},
	{ID: "ss-5", VendorID: "southern-stories", Name: "Vada Sambar", Description: "2 pieces of crispy lentil donuts with sambar and chutney", Price: 70, Category: "South Indian", IsVeg: true, IsAvailable: true},
}

var laundryItems = []entity.LaundryItem{
	{ID: "shirt", Name: "Shirt", Price: 20},
	{ID: "tshirt", Name: "T-shirt", Price: 15},
	{ID: "pant", Name: "Pant", Price: 25},
	{ID: "lower", Name: "Lower", Price: 20},
	{ID: "trouser", Name: "Trouser", Price: 25},
	{ID: "dupatta", Name: "Dupatta", Price: 15},
	{ID: "kurti", Name: "Kurti", Price: 30},
	{ID: "bedsheet", Name: "Bedsheet", Price: 40},
	{ID: "pillow-cover", Name: "Pillow Cover", Price: 10},
}
