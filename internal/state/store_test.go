package state

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/farmplan/internal/domain/models"
	"github.com/mamadbah2/farmplan/internal/repository/memory"
	"github.com/mamadbah2/farmplan/internal/repository/storage"
)

func newTestStore(t *testing.T) (*Store, *memory.Repository) {
	t.Helper()
	repo := memory.NewRepository(nil)
	store := NewStore(repo, nil)
	require.NoError(t, store.Load(context.Background()))
	return store, repo
}

func TestStore_LoadDefaultsWhenEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	assert.Empty(t, store.Expenses())
	assert.Nil(t, store.ProfitPlan())
	assert.Empty(t, store.LearningProgress())
	assert.Empty(t, store.PriceAlerts())
}

func TestStore_AddExpensePersistsWholeCollection(t *testing.T) {
	store, repo := newTestStore(t)
	ctx := context.Background()

	first, err := store.AddExpense(ctx, models.ExpenseInput{
		Date: "2026-07-01", ActivityType: models.ActivitySeeds, Cost: 500,
	})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	second, err := store.AddExpense(ctx, models.ExpenseInput{
		Date: "2026-07-02", ActivityType: models.ActivityLabor, Cost: 1200,
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	var persisted []models.Expense
	found, err := repo.Get(ctx, storage.KeyExpenses, &persisted)
	require.NoError(t, err)
	require.True(t, found)
	assert.Len(t, persisted, 2)
}

func TestStore_ExpensesSortedByDescendingDate(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	for _, date := range []string{"2026-01-05", "2026-03-01", "2026-02-14"} {
		_, err := store.AddExpense(ctx, models.ExpenseInput{
			Date: date, ActivityType: models.ActivityOther, Cost: 1,
		})
		require.NoError(t, err)
	}

	expenses := store.Expenses()
	require.Len(t, expenses, 3)
	assert.Equal(t, "2026-03-01", expenses[0].Date)
	assert.Equal(t, "2026-02-14", expenses[1].Date)
	assert.Equal(t, "2026-01-05", expenses[2].Date)
}

func TestStore_UpdateExpenseShallowMerge(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	expense, err := store.AddExpense(ctx, models.ExpenseInput{
		Date: "2026-07-01", ActivityType: models.ActivitySeeds, Cost: 500, Notes: "hybrid seed",
	})
	require.NoError(t, err)

	newCost := 650.0
	require.NoError(t, store.UpdateExpense(ctx, expense.ID, models.ExpenseUpdate{Cost: &newCost}))

	updated := store.Expenses()[0]
	assert.Equal(t, 650.0, updated.Cost)
	// Untouched fields survive the merge.
	assert.Equal(t, "hybrid seed", updated.Notes)
	assert.Equal(t, models.ActivitySeeds, updated.ActivityType)
}

func TestStore_UpdateUnknownIDIsNoOp(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.AddExpense(ctx, models.ExpenseInput{
		Date: "2026-07-01", ActivityType: models.ActivitySeeds, Cost: 500,
	})
	require.NoError(t, err)

	cost := 999.0
	require.NoError(t, store.UpdateExpense(ctx, "no-such-id", models.ExpenseUpdate{Cost: &cost}))
	assert.Equal(t, 500.0, store.Expenses()[0].Cost)
}

func TestStore_DeleteUnknownIDLeavesCollectionUnchanged(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.AddExpense(ctx, models.ExpenseInput{
		Date: "2026-07-01", ActivityType: models.ActivitySeeds, Cost: 500,
	})
	require.NoError(t, err)

	require.NoError(t, store.DeleteExpense(ctx, "no-such-id"))
	assert.Len(t, store.Expenses(), 1)
}

func TestStore_DeleteExpense(t *testing.T) {
	store, repo := newTestStore(t)
	ctx := context.Background()

	expense, err := store.AddExpense(ctx, models.ExpenseInput{
		Date: "2026-07-01", ActivityType: models.ActivitySeeds, Cost: 500,
	})
	require.NoError(t, err)

	require.NoError(t, store.DeleteExpense(ctx, expense.ID))
	assert.Empty(t, store.Expenses())

	var persisted []models.Expense
	found, err := repo.Get(ctx, storage.KeyExpenses, &persisted)
	require.NoError(t, err)
	require.True(t, found)
	assert.Empty(t, persisted)
}

func TestStore_WriteFailureKeepsMemoryMutation(t *testing.T) {
	store, repo := newTestStore(t)
	ctx := context.Background()

	_, err := store.AddExpense(ctx, models.ExpenseInput{
		Date: "2026-07-01", ActivityType: models.ActivitySeeds, Cost: 500,
	})
	require.NoError(t, err)

	repo.FailWrites(errors.New("storage unavailable"))
	_, err = store.AddExpense(ctx, models.ExpenseInput{
		Date: "2026-07-02", ActivityType: models.ActivityLabor, Cost: 900,
	})
	require.Error(t, err)

	// Memory took the mutation, durable storage kept the prior collection.
	assert.Len(t, store.Expenses(), 2)

	repo.FailWrites(nil)
	var persisted []models.Expense
	found, getErr := repo.Get(ctx, storage.KeyExpenses, &persisted)
	require.NoError(t, getErr)
	require.True(t, found)
	assert.Len(t, persisted, 1)
}

func TestStore_SaveProfitPlanOverwritesSingleton(t *testing.T) {
	store, repo := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveProfitPlan(ctx, models.ProfitPlan{CropType: models.CropRice, TotalCost: 3800}))
	require.NoError(t, store.SaveProfitPlan(ctx, models.ProfitPlan{CropType: models.CropWheat, TotalCost: 5000}))

	plan := store.ProfitPlan()
	require.NotNil(t, plan)
	assert.Equal(t, models.CropWheat, plan.CropType)

	var persisted models.ProfitPlan
	found, err := repo.Get(ctx, storage.KeyProfitPlan, &persisted)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, models.CropWheat, persisted.CropType)
}

func TestStore_MarkLessonCompleteIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.MarkLessonComplete(ctx, "middleman", "middleman-1"))
	after := store.LearningProgress()

	require.NoError(t, store.MarkLessonComplete(ctx, "middleman", "middleman-1"))
	assert.Equal(t, after, store.LearningProgress())
	assert.True(t, store.LearningProgress().Completed("middleman", "middleman-1"))
	assert.False(t, store.LearningProgress().Completed("middleman", "middleman-2"))
}

func TestStore_PriceAlertLifecycle(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	alert, err := store.AddPriceAlert(ctx, models.PriceAlertInput{
		CropType: models.CropCotton, TargetPrice: 6000,
	})
	require.NoError(t, err)
	assert.True(t, alert.Active)
	require.NotEmpty(t, alert.ID)

	require.NoError(t, store.RemovePriceAlert(ctx, alert.ID))
	assert.Empty(t, store.PriceAlerts())
}

func TestStore_LoadOverwritesInMemoryState(t *testing.T) {
	repo := memory.NewRepository(nil)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, storage.KeyExpenses, []models.Expense{
		{ID: "seeded", Date: "2026-05-01", ActivityType: models.ActivitySeeds, Cost: 100},
	}))

	store := NewStore(repo, nil)
	require.NoError(t, store.Load(ctx))
	require.Len(t, store.Expenses(), 1)

	// A second load replaces whatever accumulated since (last-load-wins).
	_, err := store.AddExpense(ctx, models.ExpenseInput{
		Date: "2026-06-01", ActivityType: models.ActivityLabor, Cost: 200,
	})
	require.NoError(t, err)

	require.NoError(t, repo.Set(ctx, storage.KeyExpenses, []models.Expense{}))
	require.NoError(t, store.Load(ctx))
	assert.Empty(t, store.Expenses())
}
