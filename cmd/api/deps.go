package main

import (
	"context"

	"github.com/rs/zerolog"

	"spendwise/internal/domain/policy"
	"spendwise/internal/domain/transaction"
	"spendwise/internal/domain/user"
	"spendwise/internal/infrastructure/device"
	"spendwise/internal/infrastructure/firebase"
	"spendwise/internal/infrastructure/firestore"
	"spendwise/internal/infrastructure/sqlite"
	httphandlers "spendwise/internal/interfaces/http"
	"spendwise/internal/shared/auth"
	"spendwise/internal/shared/config"
)

// Dependencies holds all initialized application components.
type Dependencies struct {
	Store *firestore.Store
	Creds *sqlite.CredentialCache

	// Handlers
	AuthHandler        *httphandlers.AuthHandler
	UserHandler        *httphandlers.UserHandler
	TransactionHandler *httphandlers.TransactionHandler
	ExportHandler      *httphandlers.ExportHandler
	AppLockHandler     *httphandlers.AppLockHandler

	// Token verification for the auth middleware
	Firebase *firebase.Client
}

// NewDependencies initializes all application dependencies.
func NewDependencies(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Dependencies, error) {
	fbClient, err := firebase.NewClient(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		return nil, err
	}
	identity := firebase.NewIdentityClient(cfg.Firebase.WebAPIKey)

	store, err := firestore.NewStore(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("project", cfg.Firebase.ProjectID).Msg("connected to document store")

	creds, err := sqlite.Open(cfg.Cache.CredentialDBPath)
	if err != nil {
		store.Close()
		return nil, err
	}

	engine := policy.NewEngine(policy.DefaultRules(cfg.Policy.DemoAccessEnabled)...)

	transactionRepo := firestore.NewTransactionRepository(store, engine)
	userRepo := firestore.NewUserRepository(store, engine)

	transactionService := transaction.NewService(transactionRepo)
	userService := user.NewService(userRepo)
	appLock := auth.NewAppLock(creds)

	files, err := device.NewCacheFileStore(cfg.Export.CacheDir)
	if err != nil {
		store.Close()
		creds.Close()
		return nil, err
	}
	printer := device.NewExecPrintEngine(cfg.Export.PrintCommand, files.CacheDir())
	share := device.NewCommandShareSink(cfg.Export.ShareCommand)

	return &Dependencies{
		Store:              store,
		Creds:              creds,
		AuthHandler:        httphandlers.NewAuthHandler(identity),
		UserHandler:        httphandlers.NewUserHandler(userService),
		TransactionHandler: httphandlers.NewTransactionHandler(transactionService),
		ExportHandler:      httphandlers.NewExportHandler(transactionService, printer, files, share, cfg.Export.DefaultCurrency),
		AppLockHandler:     httphandlers.NewAppLockHandler(appLock),
		Firebase:           fbClient,
	}, nil
}

// Close releases all resources held by dependencies.
func (d *Dependencies) Close() {
	if d.Creds != nil {
		d.Creds.Close()
	}
	if d.Store != nil {
		d.Store.Close()
	}
}
