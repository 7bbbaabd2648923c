package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"web3-risk-analyzer/client"
	"web3-risk-analyzer/models"
	"web3-risk-analyzer/tui"
	"web3-risk-analyzer/ui"
	"web3-risk-analyzer/utils"

	"github.com/joho/godotenv"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func main() {
	var (
		analysisType = flag.String("type", "", "Analysis type: wallet, collection or nft")
		address      = flag.String("address", "", "Wallet or contract address to analyze")
		tokenID      = flag.String("token-id", "", "Token ID (nft analysis only)")
		baseURL      = flag.String("url", "", "Base URL of the risk analysis backend")
		configFile   = flag.String("config", "", "Path to YAML configuration file")
		output       = flag.String("output", "", "Write the result to this YAML file")
		timeout      = flag.Duration("timeout", 0, "Request timeout, e.g. 30s (0 waits indefinitely)")
		logFile      = flag.String("log-file", "", "Write structured logs to this file")
		logLevel     = flag.String("log-level", "", "Log level: debug, info, warn or error")
		jsonOutput   = flag.Bool("json", false, "Print the raw result as JSON")
		prompt       = flag.Bool("prompt", false, "Run the line-oriented prompt instead of the TUI")
		help         = flag.Bool("h", false, "Show help")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Web3 Risk Analyzer - Analyze Ethereum wallets, NFT collections and NFTs for security risks\n\n")
		fmt.Fprintf(os.Stderr, "Submits the selected analysis to the risk analysis backend and renders the result.\n")
		fmt.Fprintf(os.Stderr, "Without -type the interactive TUI is started.\n\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
		for _, name := range []string{models.EnvBaseURL, models.EnvTimeout, models.EnvLogFile, models.EnvLogLevel, models.EnvOutputDir} {
			fmt.Fprintf(os.Stderr, "  %s\n", name)
		}
	}

	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	// A missing .env is not an error
	_ = godotenv.Load()

	cfg, err := models.LoadConfig(*configFile)
	if err != nil {
		exitWithError(err)
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		exitWithError(err)
	}

	// Flags win over file and environment
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "url":
			cfg.BaseURL = *baseURL
		case "timeout":
			cfg.RequestTimeout = *timeout
		case "log-file":
			cfg.LogFile = *logFile
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		exitWithError(err)
	}

	logger, err := utils.NewLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		exitWithError(err)
	}
	defer func() { _ = logger.Sync() }()

	analyzer := client.NewClient(cfg.BaseURL, cfg.RequestTimeout, logger)

	logger.Info("Starting Web3 Risk Analyzer",
		zap.String("baseURL", cfg.BaseURL),
		zap.Duration("timeout", cfg.RequestTimeout))

	switch {
	case *analysisType != "" || *address != "":
		code := runCommandLineMode(analyzer, cfg, commandLineArgs{
			analysisType: *analysisType,
			address:      *address,
			tokenID:      *tokenID,
			output:       *output,
			jsonOutput:   *jsonOutput,
		})
		_ = logger.Sync()
		os.Exit(code)
	case *prompt || !cfg.TUI:
		runPromptMode(analyzer, cfg, logger)
	default:
		err := tui.Run(tui.Options{
			Analyzer:  analyzer,
			Clipboard: utils.NewOSC52Clipboard(),
			Logger:    logger,
			OutputDir: cfg.OutputDir,
		})
		if err != nil {
			logger.Error("TUI exited with error", zap.Error(err))
			exitWithError(err)
		}
	}
}

type commandLineArgs struct {
	analysisType string
	address      string
	tokenID      string
	output       string
	jsonOutput   bool
}

// runCommandLineMode runs a single analysis and returns the process exit code
func runCommandLineMode(analyzer client.Analyzer, cfg models.Config, args commandLineArgs) int {
	t := models.AnalysisWallet
	if args.analysisType != "" {
		parsed, err := models.ParseAnalysisType(args.analysisType)
		if err != nil {
			ui.PrintError(os.Stderr, err.Error())
			return 2
		}
		t = parsed
	}

	req := models.AnalysisRequest{Type: t, Address: args.address}
	if t.NeedsTokenID() {
		req.TokenID = args.tokenID
	} else if args.tokenID != "" {
		ui.PrintError(os.Stderr, fmt.Sprintf("-token-id is only used with -type nft, ignoring %q", args.tokenID))
	}

	result, err := analyzer.Analyze(context.Background(), req)
	if err != nil {
		ui.PrintError(os.Stderr, client.AlertMessage(err))
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			return 1
		}
		return 3
	}

	if args.jsonOutput {
		data, err := json.MarshalIndent(result.Payload(), "", "  ")
		if err != nil {
			ui.PrintError(os.Stderr, fmt.Sprintf("Failed to encode result: %v", err))
			return 1
		}
		fmt.Println(string(data))
	} else {
		ui.PrintResult(os.Stdout, result)
	}

	writer := utils.NewYAMLWriter()
	switch {
	case args.output != "":
		if err := writer.Write(result, args.output); err != nil {
			ui.PrintError(os.Stderr, fmt.Sprintf("Failed to write results: %v", err))
			return 1
		}
		ui.PrintSuccess(os.Stderr, "Results written to "+args.output)
	case cfg.OutputDir != "":
		path, err := writer.WriteAnalysisResult(result, cfg.OutputDir)
		if err != nil {
			ui.PrintError(os.Stderr, fmt.Sprintf("Failed to write results: %v", err))
			return 1
		}
		ui.PrintSuccess(os.Stderr, "Results written to "+path)
	}

	return 0
}

func runPromptMode(analyzer client.Analyzer, cfg models.Config, logger *zap.Logger) {
	var writer *utils.YAMLWriter
	if cfg.OutputDir != "" {
		writer = utils.NewYAMLWriter()
	}

	p := &ui.Prompter{
		Analyzer: analyzer,
		In:       os.Stdin,
		Out:      os.Stdout,
		OnResult: func(result models.AnalysisResult) {
			if writer == nil {
				return
			}
			path, err := writer.WriteAnalysisResult(result, cfg.OutputDir)
			if err != nil {
				logger.Warn("Failed to export result", zap.Error(err))
				ui.PrintError(os.Stdout, fmt.Sprintf("Failed to write results: %v", err))
				return
			}
			ui.PrintSuccess(os.Stdout, "Results written to "+path)
		},
	}

	if err := p.Run(context.Background()); err != nil {
		logger.Error("Prompt exited with error", zap.Error(err))
		exitWithError(err)
	}
}

func exitWithError(err error) {
	msg := err.Error()
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	fmt.Fprintf(os.Stderr, "Error: %s", msg)
	os.Exit(1)
}
