package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/QUATTROMKT/info-sistema/infrastructure/database/postgres"
	"github.com/QUATTROMKT/info-sistema/infrastructure/integrator/meta/metaclient"
	"github.com/QUATTROMKT/info-sistema/infrastructure/integrator/openai"
	"github.com/QUATTROMKT/info-sistema/infrastructure/repository"
	"github.com/QUATTROMKT/info-sistema/internal/api"
	"github.com/QUATTROMKT/info-sistema/internal/config"
	"github.com/QUATTROMKT/info-sistema/internal/scheduler"
	"github.com/QUATTROMKT/info-sistema/internal/usecases/adlibrary"
	"github.com/QUATTROMKT/info-sistema/internal/usecases/advertising"
	"github.com/QUATTROMKT/info-sistema/internal/usecases/authenticating"
	"github.com/QUATTROMKT/info-sistema/internal/usecases/integrating"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	integrationRepo := repository.NewIntegrationRepository(pgConn)
	adAccountRepo := repository.NewAdAccountRepository(pgConn)
	savedAdRepo := repository.NewSavedAdRepository(pgConn)
	credentialRepo := repository.NewCredentialRepository(pgConn)
	financialRepo := repository.NewFinancialRecordRepository(pgConn)
	taskRepo := repository.NewTaskRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	metaClient := metaclient.NewClient(cfg)
	openaiClient := openai.NewClient(cfg)

	advertisingService := advertising.NewService(integrationRepo, adAccountRepo, metaClient, cfg)
	mutationService := advertising.NewMutationService(integrationRepo, metaClient)
	integrationService := integrating.NewService(integrationRepo, adAccountRepo)
	libraryService := adlibrary.NewService(integrationRepo, savedAdRepo, metaClient, openaiClient)

	adAnalysisSyncService := scheduler.NewAdAnalysisSyncService(libraryService, savedAdRepo, cfg)
	if err := adAnalysisSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de análise de anúncios salvos")
	} else {
		logrus.Info("Agendador de análise de anúncios salvos iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		advertisingService,
		mutationService,
		integrationService,
		libraryService,
		api.Repositories{
			Credentials: credentialRepo,
			Financial:   financialRepo,
			Tasks:       taskRepo,
			Products:    productRepo,
		},
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
