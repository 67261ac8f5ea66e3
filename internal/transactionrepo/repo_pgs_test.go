package transactionrepo

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/finwise/wallet-tracker/internal/domain"
	"github.com/finwise/wallet-tracker/internal/userrepo"
	"github.com/finwise/wallet-tracker/pkg/configpkg"
	"github.com/finwise/wallet-tracker/pkg/dbpkg"
	"github.com/finwise/wallet-tracker/pkg/passpkg"
	"github.com/finwise/wallet-tracker/pkg/randompkg"

	_ "github.com/lib/pq"
)

var (
	testRepo     *RepoPGS
	testUserRepo *userrepo.RepoPGS
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	testDB, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		log.Fatal("cannot connect to db:", err)
	}

	testRepo = NewRepoPGS(testDB)
	testUserRepo = userrepo.NewRepoPGS(testDB)

	os.Exit(m.Run())
}

func createRandomUser(t *testing.T) domain.User {
	t.Helper()

	hashedPassword, err := passpkg.Hash(randompkg.String(10))
	require.NoError(t, err)

	arg := domain.CreateUserParams{
		ID:             uuid.New(),
		Name:           randompkg.String(8),
		Email:          randompkg.Email(),
		Profile:        randompkg.String(20),
		HashedPassword: hashedPassword,
	}

	user, err := testUserRepo.Create(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, user)

	return user
}

func createRandomTransaction(t *testing.T, owner domain.User) domain.Transaction {
	t.Helper()

	want := randompkg.Transaction(owner.ID)

	arg := domain.CreateTransactionParams{
		OwnerID:    owner.ID,
		Kind:       want.Kind,
		Amount:     want.Amount,
		Note:       want.Note,
		OccurredAt: want.OccurredAt,
	}

	tx, err := testRepo.Create(context.Background(), arg)
	require.NoError(t, err)
	require.NotEmpty(t, tx)

	require.NotEqual(t, uuid.Nil, tx.ID)
	require.Equal(t, owner.ID, tx.OwnerID)
	require.Equal(t, arg.Kind, tx.Kind)
	require.True(t, arg.Amount.Equal(tx.Amount))
	require.Equal(t, arg.Note, tx.Note)
	require.WithinDuration(t, arg.OccurredAt, tx.OccurredAt, time.Second)
	require.NotZero(t, tx.CreatedAt)

	return tx
}

func TestCreate(t *testing.T) {
	owner := createRandomUser(t)
	createRandomTransaction(t, owner)
}

func TestCreateUnknownOwner(t *testing.T) {
	arg := domain.CreateTransactionParams{
		OwnerID:    uuid.New(),
		Kind:       domain.Deposit,
		Amount:     randompkg.MoneyAmountBetween(10, 100),
		OccurredAt: time.Now(),
	}

	_, err := testRepo.Create(context.Background(), arg)
	require.EqualError(t, err, domain.ErrOwnerNotFound.Error())
}

func TestGet(t *testing.T) {
	owner := createRandomUser(t)
	created := createRandomTransaction(t, owner)

	got, err := testRepo.Get(context.Background(), created.ID)
	require.NoError(t, err)

	require.Equal(t, created.ID, got.ID)
	require.Equal(t, created.Kind, got.Kind)
	require.True(t, created.Amount.Equal(got.Amount))
	require.Equal(t, created.Note, got.Note)
	require.WithinDuration(t, created.OccurredAt, got.OccurredAt, time.Second)
}

func TestGetNotFound(t *testing.T) {
	_, err := testRepo.Get(context.Background(), uuid.New())
	require.EqualError(t, err, domain.ErrTransactionNotFound.Error())
}

func TestList(t *testing.T) {
	owner := createRandomUser(t)

	for i := 0; i < 5; i++ {
		createRandomTransaction(t, owner)
	}

	items, err := testRepo.List(context.Background(), owner.ID)
	require.NoError(t, err)
	require.Len(t, items, 5)

	for i := 1; i < len(items); i++ {
		require.False(t, items[i].OccurredAt.After(items[i-1].OccurredAt),
			"expected occurred_at descending order")
	}

	for _, tx := range items {
		require.Equal(t, owner.ID, tx.OwnerID)
	}
}

func TestUpdate(t *testing.T) {
	owner := createRandomUser(t)
	created := createRandomTransaction(t, owner)

	arg := domain.CreateTransactionParams{
		OwnerID:    owner.ID,
		Kind:       domain.Withdrawal,
		Amount:     randompkg.MoneyAmountBetween(10, 100),
		Note:       randompkg.Note(domain.Withdrawal),
		OccurredAt: created.OccurredAt.AddDate(0, 0, -1),
	}

	updated, err := testRepo.Update(context.Background(), created.ID, arg)
	require.NoError(t, err)

	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, arg.Kind, updated.Kind)
	require.True(t, arg.Amount.Equal(updated.Amount))
	require.Equal(t, arg.Note, updated.Note)
	require.WithinDuration(t, arg.OccurredAt, updated.OccurredAt, time.Second)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateNotFound(t *testing.T) {
	arg := domain.CreateTransactionParams{
		Kind:       domain.Deposit,
		Amount:     randompkg.MoneyAmountBetween(10, 100),
		OccurredAt: time.Now(),
	}

	_, err := testRepo.Update(context.Background(), uuid.New(), arg)
	require.EqualError(t, err, domain.ErrTransactionNotFound.Error())
}

func TestDelete(t *testing.T) {
	owner := createRandomUser(t)
	created := createRandomTransaction(t, owner)

	err := testRepo.Delete(context.Background(), created.ID)
	require.NoError(t, err)

	_, err = testRepo.Get(context.Background(), created.ID)
	require.EqualError(t, err, domain.ErrTransactionNotFound.Error())
}

func TestDeleteNotFound(t *testing.T) {
	err := testRepo.Delete(context.Background(), uuid.New())
	require.EqualError(t, err, domain.ErrTransactionNotFound.Error())
}
