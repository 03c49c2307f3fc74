package models

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// MatchRule assigns a category to settlement transactions whose payee
// name matches a glob pattern. Rules with a lower priority value win.
type MatchRule struct {
	DefaultModel
	User     User      `json:"-"`
	UserID   uuid.UUID
	Priority uint
	Match    string
	Category string
}

func (r *MatchRule) BeforeSave(_ *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)
	r.Category = strings.TrimSpace(r.Category)

	if r.Category == "" {
		return ErrMatchRuleCategoryNotSet
	}

	return nil
}

func (r *MatchRule) BeforeCreate(tx *gorm.DB) error {
	_ = r.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*MatchRule)
	return tx.First(&User{}, toSave.UserID).Error
}

// CategoryFor returns the category for a payee name according to the
// user's match rules, or the fallback when no rule matches.
func CategoryFor(db *gorm.DB, userID uuid.UUID, payee, fallback string) (string, error) {
	var rules []MatchRule

	err := db.Where(&MatchRule{UserID: userID}).Find(&rules).Error
	if err != nil {
		return "", err
	}

	// Sort rules by priority and match, with lower priority meaning a
	// more important rule
	sort.Slice(rules, func(i, j int) bool {
		if rules[i].Priority != rules[j].Priority {
			return rules[i].Priority < rules[j].Priority
		}

		return rules[i].Match < rules[j].Match
	})

	for _, rule := range rules {
		if glob.Glob(rule.Match, payee) {
			return rule.Category, nil
		}
	}

	return fallback, nil
}
