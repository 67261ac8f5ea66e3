// Package main seeds the database with the demo user and a long history of
// sample transactions so every period preset has data to show.
package main

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/finwise/wallet-tracker/internal/domain"
	"github.com/finwise/wallet-tracker/internal/transactionrepo"
	"github.com/finwise/wallet-tracker/internal/userrepo"
	"github.com/finwise/wallet-tracker/pkg/configpkg"
	"github.com/finwise/wallet-tracker/pkg/dbpkg"
	"github.com/finwise/wallet-tracker/pkg/passpkg"
	"github.com/finwise/wallet-tracker/pkg/randompkg"

	_ "github.com/lib/pq"
)

// bucket describes how many random transactions to generate within a range of
// days before now. Recent activity is denser than old history.
type bucket struct {
	count      int
	daysAgoMin int
	daysAgoMax int
}

var buckets = []bucket{
	{28, 0, 30},
	{17, 31, 90},
	{7, 91, 180},
	{65, 181, 365},
	{88, 366, 1825},
	{123, 1826, 3650},
	{77, 3651, 5475},
}

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	demoUserID, err := uuid.Parse(config.DemoUserID)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid demo user id")
	}

	db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to database")
	}
	defer db.Close()

	if err = dbpkg.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("cannot run migrations")
	}

	ctx := context.Background()

	hashedPassword, err := passpkg.Hash("demo-password")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot hash demo password")
	}

	userRepo := userrepo.NewRepoPGS(db)

	_, err = userRepo.Create(ctx, domain.CreateUserParams{
		ID:             demoUserID,
		Name:           "Demo User",
		Email:          "demo@wallet-tracker.dev",
		Profile:        "Personal finance demo account",
		HashedPassword: hashedPassword,
	})

	switch {
	case err == nil:
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		log.Info().Msg("demo user already seeded, skipping")
		return
	default:
		log.Fatal().Err(err).Msg("cannot create demo user")
	}

	transactionRepo := transactionrepo.NewRepoPGS(db)
	now := time.Now().UTC()

	var total int

	for _, b := range buckets {
		for i := 0; i < b.count; i++ {
			tx := randompkg.TransactionDaysAgo(demoUserID, now, b.daysAgoMin, b.daysAgoMax)

			_, err = transactionRepo.Create(ctx, domain.CreateTransactionParams{
				OwnerID:    tx.OwnerID,
				Kind:       tx.Kind,
				Amount:     tx.Amount,
				Note:       tx.Note,
				OccurredAt: tx.OccurredAt,
			})
			if err != nil {
				log.Fatal().Err(err).Msg("cannot create transaction")
			}

			total++
		}
	}

	log.Info().Int("transactions", total).Msg("seeding complete")
}
