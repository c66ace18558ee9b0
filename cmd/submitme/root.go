package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/fadilmartias/submitme/internal/config"
	"github.com/fadilmartias/submitme/internal/logger"
	"github.com/fadilmartias/submitme/internal/prompt"
	"github.com/fadilmartias/submitme/internal/service"
	"github.com/fadilmartias/submitme/internal/usecase"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const app = "submitme"

var (
	cfgFile string

	rootCmd = &cobra.Command{
		Use:          app,
		Short:        "submitme parses CVs and drafts answers to job application questions",
		SilenceUsage: true,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults(viper.GetViper())

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (yaml); environment variables override it")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	if err := viper.BindPFlag("log.debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		log.Fatalf("binding debug flag: %v", err)
	}
	if err := viper.BindPFlag("log.json", rootCmd.PersistentFlags().Lookup("json")); err != nil {
		log.Fatalf("binding json flag: %v", err)
	}
}

func initConfig() {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("loading .env: %v", err)
	}

	if cfgFile == "" {
		return
	}
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("reading config %s: %v", cfgFile, err)
	}
}

// services is everything a command needs once configuration is loaded.
type services struct {
	cfg    *config.Config
	logger *zap.Logger
	cv     *usecase.CVUsecase
	answer *usecase.AnswerUsecase
}

func setup(ctx context.Context) (*services, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	zapLogger, err := logger.New(cfg.Log, cfg.App)
	if err != nil {
		return nil, fmt.Errorf("creating a logger: %w", err)
	}

	prompts, err := prompt.Load(cfg.Prompts.File)
	if err != nil {
		return nil, fmt.Errorf("loading prompts: %w", err)
	}

	llm, err := service.NewLLMService(ctx, cfg.LLM, zapLogger)
	if err != nil {
		return nil, fmt.Errorf("creating llm client: %w", err)
	}

	zapLogger.Debug("runtime ready",
		zap.String(logger.FieldProvider, llm.Provider()),
		zap.String(logger.FieldModel, llm.Model()),
		zap.String("prompts_version", prompts.Version),
		zap.Duration("llm_timeout", cfg.LLM.Timeout),
	)

	return &services{
		cfg:    cfg,
		logger: zapLogger,
		cv:     usecase.NewCVUsecase(llm, prompts, zapLogger),
		answer: usecase.NewAnswerUsecase(llm, prompts, zapLogger),
	}, nil
}
