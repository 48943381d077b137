package dao

import (
	"github.com/nanodraw/nanodraw/internal/components/sqlite"
	"github.com/nanodraw/nanodraw/internal/modules/model"
)

func CreateGeneration(g *model.Generation) error {
	return sqlite.DB.Model(&model.Generation{}).Create(g).Error
}

func RecentGenerations(limit int) ([]model.Generation, error) {
	var generations []model.Generation
	err := sqlite.DB.Model(&model.Generation{}).
		Order("id DESC").
		Limit(limit).
		Find(&generations).Error
	if err != nil {
		return nil, err
	}
	return generations, nil
}
