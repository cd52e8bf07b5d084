package service

import (
	"github.com/hance08/keasec/internal/config"
	"github.com/hance08/keasec/internal/secacct"
	"github.com/hance08/keasec/internal/store"
	"github.com/hance08/keasec/internal/trxmgr"
)

// Service bundles what the command layer needs.
type Service struct {
	Config      *config.Config
	Account     *AccountService
	Transaction *TransactionService
	Securities  *secacct.TransactionManager
	Reconciler  *trxmgr.Reconciler
	Finder      *trxmgr.Finder
}

func NewService(repo store.Repository, cfg *config.Config) *Service {
	return &Service{
		Config:      cfg,
		Account:     NewAccountService(repo, cfg),
		Transaction: NewTransactionService(repo, cfg),
		Securities:  secacct.NewTransactionManager(repo, cfg.Policy),
		Reconciler:  trxmgr.NewReconciler(repo, cfg.Policy),
		Finder:      trxmgr.NewFinder(repo, cfg.Policy),
	}
}
