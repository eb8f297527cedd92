package configs

import (
	"log"

	"backend/entity"

	"golang.org/x/crypto/bcrypt"
)

// สร้างบัญชี collector ครั้งแรก (ไม่มี self-register ฝั่งเจ้าหน้าที่)
func SeedCollector() error {
	db := DB()
	username := getEnv("COLLECTOR_USERNAME", "")
	pass := getEnv("COLLECTOR_PASSWORD", "")
	if username == "" || pass == "" {
		log.Println("skip seeding collector: missing COLLECTOR_USERNAME/COLLECTOR_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		log.Println("collector already exists:", username)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	collector := entity.User{
		Username: username,
		Password: string(hash),
		FullName: "Collector Seed",
		Role:     entity.RoleCollector,
	}
	return db.Create(&collector).Error
}

// Seed รายการคู่มือแยกขยะเริ่มต้น
func SeedGuideItems() error {
	db := DB()

	items := []entity.WasteGuideItem{
		{ItemName: "banana peel", Category: entity.WasteWet, Instructions: "Put in wet bin. Can compost."},
		{ItemName: "vegetable scraps", Category: entity.WasteWet, Instructions: "Wet bin. Drain excess water if possible."},
		{ItemName: "tea bags", Category: entity.WasteWet, Instructions: "Wet bin. Remove staples if any."},
		{ItemName: "eggshell", Category: entity.WasteWet, Instructions: "Wet bin. Compostable."},
		{ItemName: "milk packet", Category: entity.WasteDry, Instructions: "Dry bin. Rinse & dry first."},
		{ItemName: "chips packet", Category: entity.WasteDry, Instructions: "Dry bin. Keep clean and dry."},
		{ItemName: "newspaper", Category: entity.WasteDry, Instructions: "Dry bin. Bundle if possible."},
		{ItemName: "cardboard", Category: entity.WasteDry, Instructions: "Dry bin. Flatten for easy pickup."},
		{ItemName: "glass bottle", Category: entity.WasteDry, Instructions: "Dry bin. Wrap if broken."},
		{ItemName: "aluminium can", Category: entity.WasteDry, Instructions: "Dry bin. Rinse and crush lightly."},
		{ItemName: "battery", Category: entity.WasteHazard, Instructions: "Hazard. Store separately. Never in wet bin."},
		{ItemName: "tube light", Category: entity.WasteHazard, Instructions: "Hazard. Handle carefully; return to collection center."},
		{ItemName: "medicine strip", Category: entity.WasteHazard, Instructions: "Hazard. Seal in bag; do not mix with wet."},
		{ItemName: "sanitary waste", Category: entity.WasteHazard, Instructions: "Hazard. Wrap in paper, label, separate."},
		{ItemName: "old phone", Category: entity.WasteEwaste, Instructions: "E-waste. Give to authorized e-waste pickup."},
		{ItemName: "charger", Category: entity.WasteEwaste, Instructions: "E-waste. Keep together in a bag."},
		{ItemName: "earphones", Category: entity.WasteEwaste, Instructions: "E-waste. Send to e-waste collection."},
		{ItemName: "broken appliance", Category: entity.WasteEwaste, Instructions: "E-waste. Do not dismantle; send as-is."},
	}
	for _, it := range items {
		db.Where(entity.WasteGuideItem{ItemName: it.ItemName}).
			Attrs(entity.WasteGuideItem{Category: it.Category, Instructions: it.Instructions}).
			FirstOrCreate(&entity.WasteGuideItem{})
	}

	log.Println("guide items seeded")
	return nil
}
