package config

import (
	"os"
	"sync"
)

type SupabaseConfig struct {
	URL    string
	APIKey string
}

var (
	supabaseConfig *SupabaseConfig
	supabaseOnce   sync.Once
)

func LoadSupabaseConfig() *SupabaseConfig {
	supabaseOnce.Do(func() {
		supabaseConfig = &SupabaseConfig{
			URL:    os.Getenv("SUPABASE_URL"),
			APIKey: os.Getenv("SUPABASE_KEY"),
		}
	})
	return supabaseConfig
}
