package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"newsiq/internal/feedback"
	"newsiq/internal/gemini"
	"newsiq/internal/quiz"
	"newsiq/internal/scraper"
	"newsiq/internal/study"
)

func topicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List configured topics",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			for _, t := range a.catalog.All() {
				fmt.Printf("%-30s %s\n", t.Label, t.Query)
			}
			return nil
		},
	}
}

func fetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <topic or search text>",
		Short: "Fetch and deduplicate news for a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			topic, err := a.catalog.Resolve(args[0])
			if err != nil {
				return err
			}

			articles := a.articlesFor(context.Background(), topic)
			if len(articles) == 0 {
				fmt.Printf("No articles found for %s. Try another topic.\n", topic.Label)
				return nil
			}

			fmt.Printf("%s: %d unique articles\n\n", topic.Label, len(articles))
			for i, art := range articles {
				fmt.Printf("%2d. %s\n", i+1, displayTitle(art))
				fmt.Printf("    %s\n", art.Description)
				fmt.Printf("    %s | %s | %s\n\n", art.PublishedAt, art.URL, displayImage(art))
			}
			return nil
		},
	}
}

func analyzeCmd() *cobra.Command {
	var articleURL string
	var topicName string
	var index int

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "AI deep-dive analysis of one article",
		Long:  "Analyzes an article, either by scraping a URL (--url) or by picking the Nth article of a topic (--topic, --index).",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			ctx := context.Background()

			var cacheKey, text string
			switch {
			case articleURL != "":
				full, err := scraper.ExtractFullArticle(articleURL)
				if err != nil {
					return fmt.Errorf("extract article: %w", err)
				}
				cacheKey = a.cache.AnalysisKey(full.Title)
				text = full.Title + " " + full.Content
			case topicName != "":
				topic, err := a.catalog.Resolve(topicName)
				if err != nil {
					return err
				}
				articles := a.articlesFor(ctx, topic)
				if len(articles) == 0 {
					fmt.Printf("No articles found for %s. Try another topic.\n", topic.Label)
					return nil
				}
				if index < 1 || index > len(articles) {
					return fmt.Errorf("--index must be between 1 and %d", len(articles))
				}
				art := articles[index-1]
				cacheKey = a.cache.AnalysisKey(art.Title)
				text = art.Title + " " + art.Description
			default:
				return errors.New("pass --url or --topic with --index")
			}

			if cached, ok := a.cache.Get(cacheKey); ok {
				printAnalysis(cached.(*gemini.Analysis))
				return nil
			}

			client, err := a.geminiClient(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			analysis, err := client.Analyze(ctx, text)
			if err != nil {
				if errors.Is(err, gemini.ErrNoJSON) || errors.Is(err, gemini.ErrBadShape) {
					fmt.Println("Analysis unavailable: the model response could not be parsed.")
					return nil
				}
				return err
			}

			a.cache.Set(cacheKey, analysis, a.cfg.AnalysisCacheTTL)
			printAnalysis(analysis)
			return nil
		},
	}

	cmd.Flags().StringVar(&articleURL, "url", "", "article URL to scrape and analyze")
	cmd.Flags().StringVar(&topicName, "topic", "", "topic whose article list to pick from")
	cmd.Flags().IntVar(&index, "index", 1, "1-based article index within the topic")
	return cmd
}

func printAnalysis(an *gemini.Analysis) {
	fmt.Printf("Summary: %s\n\n", an.Summary)
	fmt.Printf("Key Terms: %s\n\n", strings.Join(an.Keywords, ", "))
	fmt.Println("Talking Points:")
	for _, p := range an.TalkingPoints {
		fmt.Printf("  - %s\n", p)
	}
}

func quizCmd() *cobra.Command {
	var pick int

	cmd := &cobra.Command{
		Use:   "quiz <topic or search text>",
		Short: "Generate and take a quiz over the top articles of a topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			ctx := context.Background()
			topic, err := a.catalog.Resolve(args[0])
			if err != nil {
				return err
			}

			articles := a.articlesFor(ctx, topic)
			if len(articles) == 0 {
				fmt.Printf("No articles found for %s. Try another topic.\n", topic.Label)
				return nil
			}

			list := study.NewList()
			for _, art := range articles {
				if list.Len() >= pick {
					break
				}
				list.Add(art)
			}
			fmt.Printf("%d articles queued for the quiz.\n", list.Len())

			client, err := a.geminiClient(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			questions, err := client.GenerateQuiz(ctx, list.FullText(), quiz.QuestionCount(list.Len()))
			if err != nil {
				if errors.Is(err, gemini.ErrNoJSON) || errors.Is(err, gemini.ErrBadShape) {
					fmt.Println("Quiz generation failed: nothing to show.")
					return nil
				}
				return err
			}

			sess := quiz.NewSession(questions)
			if sess == nil {
				fmt.Println("Quiz generation failed: nothing to show.")
				return nil
			}

			runQuizSession(sess)
			return nil
		},
	}

	cmd.Flags().IntVar(&pick, "pick", 3, "how many top articles go into the study set")
	return cmd
}

func runQuizSession(sess *quiz.Session) {
	letters := []string{"A", "B", "C", "D"}
	reader := bufio.NewScanner(os.Stdin)

	for i, q := range sess.Questions() {
		fmt.Printf("\n%d. %s\n", i+1, q.Question)
		for j, opt := range q.Options {
			fmt.Printf("   %s) %s\n", letters[j], opt)
		}
		fmt.Print("Your answer (A-D, Enter to skip): ")

		if !reader.Scan() {
			break
		}
		choice := strings.ToUpper(strings.TrimSpace(reader.Text()))
		for j, letter := range letters {
			if choice == letter && j < len(q.Options) {
				sess.Answer(i, q.Options[j])
				break
			}
		}
	}

	result := sess.Grade()
	fmt.Println("\n=== Quiz Results ===")
	for i, v := range result.Verdicts {
		switch {
		case v.Correct:
			fmt.Printf("%d. Correct! (%s)\n", i+1, v.UserAnswer)
		case v.WasAnswered:
			fmt.Printf("%d. Wrong: you chose %q, correct answer: %q\n", i+1, v.UserAnswer, v.Question.CorrectAnswer)
		default:
			fmt.Printf("%d. Skipped, correct answer: %q\n", i+1, v.Question.CorrectAnswer)
		}
		if v.Question.Explanation != "" {
			fmt.Printf("   Insight: %s\n", v.Question.Explanation)
		}
	}

	pct := result.Percent()
	fmt.Printf("\nScore: %d/%d (%.0f%%)\n", result.Score, result.Total, pct)
	switch {
	case pct == 100:
		fmt.Println("Perfect score!")
	case pct > 70:
		fmt.Println("Good job!")
	default:
		fmt.Println("Keep studying.")
	}
}

func feedbackCmd() *cobra.Command {
	var rating int
	var topicRequest string
	var message string

	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "File feedback as a GitHub issue",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			if !a.cfg.FeedbackConfigured() {
				return errors.New("feedback needs GITHUB_TOKEN, REPO_OWNER and REPO_NAME")
			}

			submitter := feedback.NewSubmitter(a.cfg.GithubToken, a.cfg.RepoOwner, a.cfg.RepoName)
			err = submitter.Submit(context.Background(), feedback.Feedback{
				Rating:       rating,
				TopicRequest: topicRequest,
				Message:      message,
			})
			if err != nil {
				return err
			}
			fmt.Println("Feedback sent, thank you!")
			return nil
		},
	}

	cmd.Flags().IntVar(&rating, "rating", 5, "rating from 1 to 5")
	cmd.Flags().StringVar(&topicRequest, "topic-request", "", "topic you would like added")
	cmd.Flags().StringVar(&message, "message", "", "bugs or suggestions")
	return cmd
}
