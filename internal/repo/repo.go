package repo

import (
	"github.com/vaqsi1990/cloth-sub002/internal/pg"
	orderrepo "github.com/vaqsi1990/cloth-sub002/internal/repo/order-repo"
	productrepo "github.com/vaqsi1990/cloth-sub002/internal/repo/product-repo"
	tierrepo "github.com/vaqsi1990/cloth-sub002/internal/repo/tier-repo"
	transactionrepo "github.com/vaqsi1990/cloth-sub002/internal/repo/transaction-repo"
	userrepo "github.com/vaqsi1990/cloth-sub002/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo        *userrepo.Repository
	ProductRepo     *productrepo.Repository
	TierRepo        *tierrepo.Repository
	OrderRepo       *orderrepo.Repository
	TransactionRepo *transactionrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		ProductRepo:     productrepo.New(conn, txManager),
		TierRepo:        tierrepo.New(conn, txManager),
		OrderRepo:       orderrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
	}
}
