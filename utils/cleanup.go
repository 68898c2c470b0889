package utils

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"cms/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// logSweeper logs sweeper events with timestamp
func logSweeper(message string) {
	log.Printf("[CV-SWEEPER %s] %s", time.Now().Format(time.RFC3339), message)
}

// SweepOrphanCVs deletes stored CV files that no professional_info row
// references. A registration whose transaction rolled back after the
// file move would otherwise leak its upload. Files younger than
// minAge are left alone so in-flight registrations are never raced.
func SweepOrphanCVs(db *gorm.DB, uploadDir string, minAge time.Duration) (int, error) {
	cvsDir := filepath.Join(uploadDir, "cvs")
	entries, err := os.ReadDir(cvsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	var paths []string
	if err := db.Model(&models.ProfessionalInfo{}).
		Where("cv_path IS NOT NULL").
		Pluck("cv_path", &paths).Error; err != nil {
		return 0, err
	}

	referenced := make(map[string]bool, len(paths))
	for _, p := range paths {
		referenced[filepath.Base(p)] = true
	}

	removed := 0
	cutoff := time.Now().Add(-minAge)
	for _, entry := range entries {
		if entry.IsDir() || referenced[entry.Name()] {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(cvsDir, entry.Name())); err != nil {
			logSweeper("Error removing orphan file " + entry.Name() + ": " + err.Error())
			continue
		}
		removed++
	}

	return removed, nil
}

// StartCVSweeper schedules the nightly orphan sweep and returns the
// running scheduler.
func StartCVSweeper(db *gorm.DB, uploadDir string) *cron.Cron {
	c := cron.New()

	c.AddFunc("0 2 * * *", func() {
		removed, err := SweepOrphanCVs(db, uploadDir, 24*time.Hour)
		if err != nil {
			logSweeper("Sweep failed: " + err.Error())
			return
		}
		logSweeper("Sweep completed, removed " + strconv.Itoa(removed) + " orphan file(s)")
	})

	c.Start()
	logSweeper("CV sweeper started - runs daily at 02:00")
	return c
}
