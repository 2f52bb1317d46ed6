package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Ticket{},
		&Activity{},
		&Restaurant{},
		&RestaurantMenuItem{},
		&Store{},
		&StoreCatalogItem{},
		&HolderAccount{},
		&ChallengeCompletion{},
		&AccessCounter{},
		&LedgerEntry{},
	)
}
