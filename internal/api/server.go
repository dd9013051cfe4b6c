package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/QUATTROMKT/info-sistema/infrastructure/repository"
	"github.com/QUATTROMKT/info-sistema/internal/api/handler"
	"github.com/QUATTROMKT/info-sistema/internal/api/handler/router"
	"github.com/QUATTROMKT/info-sistema/internal/config"
	"github.com/QUATTROMKT/info-sistema/internal/usecases/adlibrary"
	"github.com/QUATTROMKT/info-sistema/internal/usecases/advertising"
	"github.com/QUATTROMKT/info-sistema/internal/usecases/authenticating"
	"github.com/QUATTROMKT/info-sistema/internal/usecases/integrating"
	"github.com/QUATTROMKT/info-sistema/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Repositories agrupa os repositórios de CRUD servidos direto pelos
// handlers, sem camada de usecase própria.
type Repositories struct {
	Credentials repository.CredentialRepository
	Financial   repository.FinancialRecordRepository
	Tasks       repository.TaskRepository
	Products    repository.ProductRepository
}

func New(
	cfg *config.Config,
	authenticator authenticating.Authenticator,
	inquirer advertising.Inquirer,
	mutator advertising.Mutator,
	integrator integrating.Integrator,
	library adlibrary.Searcher,
	repos Repositories,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Meta(inquirer, mutator, integrator)...),
		router.WithRoutes(handler.AdLibrary(library)...),
		router.WithRoutes(handler.Integrations(integrator)...),
		router.WithRoutes(handler.Credentials(repos.Credentials)...),
		router.WithRoutes(handler.Financial(repos.Financial)...),
		router.WithRoutes(handler.Tasks(repos.Tasks)...),
		router.WithRoutes(handler.Products(repos.Products)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
