// Command client is a small command-line front end for the finlearn API,
// intended for smoke-testing a running server.
//
// Usage:
//
//	client -a localhost:8080 register -name John -email john@example.com -password s3cret
//	client -a localhost:8080 -token <jwt> profile -id 1
//	client -a localhost:8080 -token <jwt> growth -initial 10000 -monthly 500 -rate 8 -years 10
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/finlearn/finlearn/internal/client"
	"github.com/finlearn/finlearn/internal/finance"
	"github.com/finlearn/finlearn/internal/logger"
	"github.com/finlearn/finlearn/internal/service"
	"github.com/finlearn/finlearn/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	address := flag.String("a", "localhost:8080", "API server address")
	token := flag.String("token", "", "bearer token for authenticated commands")
	timeout := flag.Duration("timeout", 30*time.Second, "request timeout")
	showVersion := flag.Bool("version", false, "print build info and exit")
	flag.Parse()

	if *showVersion {
		printBuildInfo()
		return
	}

	log := logger.NewLogger("finlearn-client")

	api, err := client.New(*address, *timeout, log)
	if err != nil {
		fatal(err)
	}
	if *token != "" {
		api.SetToken(*token)
	}

	args := flag.Args()
	if len(args) == 0 {
		fatal(fmt.Errorf("no command given; one of: register, login, profile, update, users, experiences, post, growth, loan, risk"))
	}

	ctx := context.Background()
	command, commandArgs := args[0], args[1:]

	switch command {
	case "register":
		runRegister(ctx, api, commandArgs)
	case "login":
		runLogin(ctx, api, commandArgs)
	case "profile":
		runProfile(ctx, api, commandArgs)
	case "update":
		runUpdate(ctx, api, commandArgs)
	case "users":
		runUsers(ctx, api)
	case "experiences":
		runExperiences(ctx, api)
	case "post":
		runPost(ctx, api, commandArgs)
	case "growth":
		runGrowth(ctx, api, commandArgs)
	case "loan":
		runLoan(ctx, api, commandArgs)
	case "risk":
		runRisk(ctx, api, commandArgs)
	default:
		fatal(fmt.Errorf("unknown command %q", command))
	}
}

func runRegister(ctx context.Context, api *client.Client, args []string) {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	mobile := fs.String("mobile", "", "contact phone (optional)")
	fs.Parse(args)

	user, err := api.Register(ctx, models.RegisterRequest{
		Name:     *name,
		Email:    *email,
		Password: *password,
		Mobile:   *mobile,
	})
	if err != nil {
		fatal(err)
	}

	fmt.Printf("token: %s\n", api.Token())
	printJSON(user)
}

func runLogin(ctx context.Context, api *client.Client, args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	user, err := api.Login(ctx, models.LoginRequest{Email: *email, Password: *password})
	if err != nil {
		fatal(err)
	}

	fmt.Printf("token: %s\n", api.Token())
	printJSON(user)
}

func runProfile(ctx context.Context, api *client.Client, args []string) {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	id := fs.Int64("id", 0, "user id")
	fs.Parse(args)

	user, err := api.GetUser(ctx, *id)
	if err != nil {
		fatal(err)
	}
	printJSON(user)
}

func runUpdate(ctx context.Context, api *client.Client, args []string) {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	id := fs.Int64("id", 0, "user id")
	name := fs.String("name", "", "new display name")
	email := fs.String("email", "", "new email")
	mobile := fs.String("mobile", "", "new contact phone")
	level := fs.String("level", "", "new learning level (Beginner|Intermediate|Advanced)")
	fs.Parse(args)

	var update models.UserUpdate
	if *name != "" {
		update.Name = name
	}
	if *email != "" {
		update.Email = email
	}
	if *mobile != "" {
		update.Mobile = mobile
	}
	if *level != "" {
		learningLevel := models.LearningLevel(*level)
		update.LearningLevel = &learningLevel
	}

	user, err := api.UpdateUser(ctx, *id, update)
	if err != nil {
		fatal(err)
	}
	printJSON(user)
}

func runUsers(ctx context.Context, api *client.Client) {
	users, err := api.ListUsers(ctx)
	if err != nil {
		fatal(err)
	}
	printJSON(users)
}

func runExperiences(ctx context.Context, api *client.Client) {
	experiences, err := api.ListExperiences(ctx)
	if err != nil {
		fatal(err)
	}
	printJSON(experiences)
}

func runPost(ctx context.Context, api *client.Client, args []string) {
	fs := flag.NewFlagSet("post", flag.ExitOnError)
	message := fs.String("message", "", "experience message")
	role := fs.String("role", "", "author role label (optional)")
	fs.Parse(args)

	experience, err := api.CreateExperience(ctx, models.ExperienceCreateRequest{
		Message: *message,
		Role:    *role,
	})
	if err != nil {
		fatal(err)
	}
	printJSON(experience)
}

func runGrowth(ctx context.Context, api *client.Client, args []string) {
	fs := flag.NewFlagSet("growth", flag.ExitOnError)
	initial := fs.Float64("initial", 0, "initial investment")
	monthly := fs.Float64("monthly", 0, "monthly contribution")
	rate := fs.Float64("rate", 0, "annual rate, percent")
	years := fs.Int("years", 0, "projection horizon, years")
	fs.Parse(args)

	trajectory, err := api.ProjectGrowth(ctx, finance.ProjectionParams{
		Initial:           *initial,
		Contribution:      *monthly,
		AnnualRatePercent: *rate,
		Years:             *years,
	})
	if err != nil {
		fatal(err)
	}
	printJSON(trajectory)
}

func runLoan(ctx context.Context, api *client.Client, args []string) {
	fs := flag.NewFlagSet("loan", flag.ExitOnError)
	principal := fs.Float64("principal", 0, "loan principal")
	rate := fs.Float64("rate", 0, "annual rate, percent")
	years := fs.Int("years", 0, "loan term, years")
	extra := fs.Float64("extra", 0, "extra monthly payment (optional)")
	schedule := fs.Bool("schedule", false, "include the month-by-month schedule")
	fs.Parse(args)

	analysis, err := api.AnalyzeLoan(ctx, service.LoanRequest{
		Principal:         *principal,
		AnnualRatePercent: *rate,
		TermYears:         *years,
		ExtraMonthly:      *extra,
		IncludeSchedule:   *schedule,
	})
	if err != nil {
		fatal(err)
	}
	printJSON(analysis)
}

func runRisk(ctx context.Context, api *client.Client, args []string) {
	fs := flag.NewFlagSet("risk", flag.ExitOnError)
	q1 := fs.Int("q1", 0, "points for question q1 (1-3)")
	q2 := fs.Int("q2", 0, "points for question q2 (1-3)")
	q3 := fs.Int("q3", 0, "points for question q3 (1-3)")
	fs.Parse(args)

	assessment, err := api.AssessRisk(ctx, map[string]int{"q1": *q1, "q2": *q2, "q3": *q3})
	if err != nil {
		fatal(err)
	}
	printJSON(assessment)
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatal(err)
	}
	fmt.Println(string(data))
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
