package registry

import (
	"fmt"

	"gorm.io/gorm"
)

// Lookup reads a dotted setting such as "wilson_us.hash".
type Lookup func(key string) string

// FromConfig builds one profile per key from <KEY>_HASH, <KEY>_ACCESS_TOKEN,
// <KEY>_CLIENT_ID and the optional <KEY>_NAME and <KEY>_STORE_URL.
func FromConfig(keys []string, lookup Lookup) []Profile {
	profiles := make([]Profile, 0, len(keys))
	for _, key := range keys {
		profiles = append(profiles, Profile{
			Key:         key,
			DisplayName: lookup(key + ".name"),
			StoreHash:   lookup(key + ".hash"),
			AccessToken: lookup(key + ".access_token"),
			ClientID:    lookup(key + ".client_id"),
			StoreURL:    lookup(key + ".store_url"),
		})
	}
	return profiles
}

// StoreProfile is a row of the store_profiles table.
type StoreProfile struct {
	ID          uint   `gorm:"primaryKey"`
	Key         string `gorm:"column:store_key;size:64;uniqueIndex"`
	DisplayName string `gorm:"column:display_name;size:128"`
	StoreHash   string `gorm:"column:store_hash;size:64"`
	AccessToken string `gorm:"column:access_token;size:255"`
	ClientID    string `gorm:"column:client_id;size:255"`
	StoreURL    string `gorm:"column:store_url;size:255"`
}

// TableName overrides the table name used by StoreProfile to `store_profiles`
func (StoreProfile) TableName() string {
	return "store_profiles"
}

// ProfileColumns are the columns FromDatabase reads.
var ProfileColumns = []string{"store_key", "display_name", "store_hash", "access_token", "client_id", "store_url"}

// FromDatabase loads profiles from the store_profiles table. With keys, the
// result has exactly one profile per key in that order, empty when the row
// is missing. Without keys every row is returned.
func FromDatabase(db *gorm.DB, keys []string) ([]Profile, error) {
	if db == nil {
		return nil, fmt.Errorf("store profiles require a database connection")
	}

	var rows []StoreProfile
	query := db.Model(&StoreProfile{}).Order("id")
	if len(keys) > 0 {
		query = query.Where("store_key IN ?", keys)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load store profiles: %w", err)
	}

	toProfile := func(r StoreProfile) Profile {
		return Profile{
			Key:         r.Key,
			DisplayName: r.DisplayName,
			StoreHash:   r.StoreHash,
			AccessToken: r.AccessToken,
			ClientID:    r.ClientID,
			StoreURL:    r.StoreURL,
		}
	}

	if len(keys) == 0 {
		profiles := make([]Profile, 0, len(rows))
		for _, r := range rows {
			profiles = append(profiles, toProfile(r))
		}
		return profiles, nil
	}

	byKey := make(map[string]StoreProfile, len(rows))
	for _, r := range rows {
		byKey[r.Key] = r
	}
	profiles := make([]Profile, 0, len(keys))
	for _, key := range keys {
		if r, ok := byKey[key]; ok {
			profiles = append(profiles, toProfile(r))
		} else {
			profiles = append(profiles, Profile{Key: key})
		}
	}
	return profiles, nil
}
