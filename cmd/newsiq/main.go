// NewsIQ: topical news briefings with AI analysis and quizzes.
//
// Usage:
//
//	newsiq topics                     # list configured topics
//	newsiq fetch "AI & GenAI"         # fetch + dedup a topic (or free text)
//	newsiq analyze --url <link>       # deep-dive analysis of one article
//	newsiq quiz "Sports" --pick 3     # quiz over the top N articles
//	newsiq feedback --rating 5 ...    # file feedback as a GitHub issue
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"newsiq/internal/logger"
	"newsiq/internal/metrics"
)

func main() {
	// A local .env is a convenience, not a requirement.
	_ = godotenv.Load()

	if os.Getenv("ENABLE_HTTP_MONITORING") == "true" {
		go startMonitoringServer()
	}

	rootCmd := &cobra.Command{
		Use:           "newsiq",
		Short:         "Topical news briefings with AI analysis and quizzes",
		Long:          "NewsIQ aggregates topical news from multiple providers, collapses near-duplicate stories, and generates AI-powered deep dives and quizzes over the articles you pick.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(topicsCmd())
	rootCmd.AddCommand(fetchCmd())
	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(quizCmd())
	rootCmd.AddCommand(feedbackCmd())

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func startMonitoringServer() {
	port := os.Getenv("MONITORING_PORT")
	if port == "" {
		port = "8080"
	}

	http.HandleFunc("/health", healthHandler)
	http.HandleFunc("/metrics", metricsHandler)

	log.Printf("Starting monitoring server on port %s", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Printf("Monitoring server error: %v", err)
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	stats := metrics.Global.GetStats()

	status := "ok"
	if !stats["is_healthy"].(bool) {
		status = "error"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	response := map[string]interface{}{
		"status":     status,
		"last_run":   stats["last_run_time"],
		"last_error": stats["last_error"],
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func metricsHandler(w http.ResponseWriter, r *http.Request) {
	stats := metrics.Global.GetStats()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
