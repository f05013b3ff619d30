package model

import "time"

// SolveEvent represents a single solve for analytics tracking
type SolveEvent struct {
	Dictionary   string        `json:"dictionary"`
	Board        string        `json:"board"` // rows joined with '/'
	WordCount    int           `json:"word_count"`
	TopWord      string        `json:"top_word,omitempty"`
	TotalScore   int           `json:"total_score"`
	ResponseTime time.Duration `json:"response_time"`
	Timestamp    time.Time     `json:"timestamp"`
}

// PopularWord represents how often a word appeared at the top of a result list
type PopularWord struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// DictionaryStats represents usage statistics for a specific dictionary
type DictionaryStats struct {
	Name       string `json:"name"`
	WordCount  int    `json:"word_count"`
	SolveCount int    `json:"solve_count"`
}

// ResponseTimeDistribution represents response time distribution buckets
type ResponseTimeDistribution struct {
	BucketUnder1ms int `json:"bucket_under_1ms"`
	Bucket1To5ms   int `json:"bucket_1_5ms"`
	Bucket5To25ms  int `json:"bucket_5_25ms"`
	Bucket25msPlus int `json:"bucket_25ms_plus"`
}

// AnalyticsDashboard represents the complete analytics dashboard data
type AnalyticsDashboard struct {
	TotalSolves          int     `json:"total_solves"`
	SolvesLast24h        int     `json:"solves_last_24h"`
	AvgResponseTimeMicro int64   `json:"avg_response_time_us"`
	AvgWordsPerSolve     float64 `json:"avg_words_per_solve"`
	AvgScorePerSolve     float64 `json:"avg_score_per_solve"`
	ActiveDictionaries   int     `json:"active_dictionaries"`

	PopularWords             []PopularWord            `json:"popular_words"`
	DictionaryUsage          []DictionaryStats        `json:"dictionary_usage"`
	ResponseTimeDistribution ResponseTimeDistribution `json:"response_time_distribution"`
}
