package service

import (
	"testing"

	"github.com/CammeCommerce/Backend-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDepositMatching_DuplicatePairRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewMatchingService(db)

	_, err := svc.CreateDepositMatching(models.DepositMatching{
		MediumName:   "M1",
		AccountAlias: "우리동네",
		Purpose:      "광고비",
	})
	require.NoError(t, err)

	_, err = svc.CreateDepositMatching(models.DepositMatching{
		MediumName:   "M2",
		AccountAlias: "우리동네",
		Purpose:      "광고비",
	})
	assert.ErrorIs(t, err, ErrDuplicateMatchingRule)

	// a different pair is fine
	_, err = svc.CreateDepositMatching(models.DepositMatching{
		MediumName:   "M1",
		AccountAlias: "우리동네",
		Purpose:      "물류비",
	})
	assert.NoError(t, err)
}

func TestCreateOrderMatching_DuplicatePairRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewMatchingService(db)

	_, err := svc.CreateOrderMatching(models.OrderMatching{
		MediumName:            "M1",
		SettlementCompanyName: "S1",
		PurchasePlace:         "A",
		SalesPlace:            "B",
	})
	require.NoError(t, err)

	_, err = svc.CreateOrderMatching(models.OrderMatching{
		PurchasePlace: "A",
		SalesPlace:    "B",
	})
	assert.ErrorIs(t, err, ErrDuplicateMatchingRule)
}

func TestDeletedMatchingRule_PairBecomesCreatable(t *testing.T) {
	db := newTestDB(t)
	svc := NewMatchingService(db)

	rule, err := svc.CreateWithdrawalMatching(models.WithdrawalMatching{
		MediumName:   "M1",
		AccountAlias: "우리동네",
		Purpose:      "광고비",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteWithdrawalMatching(rule.ID))

	// soft-deleted rule no longer matches
	_, found, err := svc.ResolveWithdrawalMatch("우리동네", "광고비")
	require.NoError(t, err)
	assert.False(t, found)

	// and the pair can be created again
	_, err = svc.CreateWithdrawalMatching(models.WithdrawalMatching{
		MediumName:   "M2",
		AccountAlias: "우리동네",
		Purpose:      "광고비",
	})
	assert.NoError(t, err)
}

func TestApplyOrderMatch_ResolvesEmptyNames(t *testing.T) {
	db := newTestDB(t)
	svc := NewMatchingService(db)

	_, err := svc.CreateOrderMatching(models.OrderMatching{
		MediumName:            "M1",
		SettlementCompanyName: "S1",
		PurchasePlace:         "A",
		SalesPlace:            "B",
	})
	require.NoError(t, err)

	order := models.Order{PurchasePlace: "A", SalesPlace: "B"}
	require.NoError(t, svc.ApplyOrderMatch(&order))

	assert.Equal(t, "M1", order.MediumName)
	assert.Equal(t, "S1", order.SettlementCompanyName)
	assert.True(t, order.IsMediumMatched)
	assert.True(t, order.IsSettlementCompanyMatched)
}

func TestApplyOrderMatch_DoesNotOverwriteSuppliedName(t *testing.T) {
	db := newTestDB(t)
	svc := NewMatchingService(db)

	_, err := svc.CreateOrderMatching(models.OrderMatching{
		MediumName:            "M1",
		SettlementCompanyName: "S1",
		PurchasePlace:         "A",
		SalesPlace:            "B",
	})
	require.NoError(t, err)

	order := models.Order{PurchasePlace: "A", SalesPlace: "B", MediumName: "M2"}
	require.NoError(t, svc.ApplyOrderMatch(&order))

	assert.Equal(t, "M2", order.MediumName)
	assert.True(t, order.IsMediumMatched)
	// the settlement company was empty, so the rule still fills it
	assert.Equal(t, "S1", order.SettlementCompanyName)
}

func TestApplyOrderMatch_RuleWithEmptySettlementCompany(t *testing.T) {
	db := newTestDB(t)
	svc := NewMatchingService(db)

	_, err := svc.CreateOrderMatching(models.OrderMatching{
		MediumName:    "M1",
		PurchasePlace: "A",
		SalesPlace:    "B",
	})
	require.NoError(t, err)

	order := models.Order{PurchasePlace: "A", SalesPlace: "B"}
	require.NoError(t, svc.ApplyOrderMatch(&order))

	assert.True(t, order.IsMediumMatched)
	assert.Empty(t, order.SettlementCompanyName)
	assert.False(t, order.IsSettlementCompanyMatched)
}

func TestApplyOrderMatch_NoRule(t *testing.T) {
	db := newTestDB(t)
	svc := NewMatchingService(db)

	order := models.Order{PurchasePlace: "A", SalesPlace: "B"}
	require.NoError(t, svc.ApplyOrderMatch(&order))

	assert.Empty(t, order.MediumName)
	assert.False(t, order.IsMediumMatched)
	assert.False(t, order.IsSettlementCompanyMatched)
}

func TestApplyDepositMatch(t *testing.T) {
	db := newTestDB(t)
	svc := NewMatchingService(db)

	_, err := svc.CreateDepositMatching(models.DepositMatching{
		MediumName:   "M1",
		AccountAlias: "우리동네",
		Purpose:      "광고비",
	})
	require.NoError(t, err)

	matched := models.Deposit{AccountAlias: "우리동네", Purpose: "광고비"}
	require.NoError(t, svc.ApplyDepositMatch(&matched))
	assert.Equal(t, "M1", matched.MediumName)
	assert.True(t, matched.IsMediumMatched)

	unmatched := models.Deposit{AccountAlias: "다른계좌", Purpose: "광고비"}
	require.NoError(t, svc.ApplyDepositMatch(&unmatched))
	assert.Empty(t, unmatched.MediumName)
	assert.False(t, unmatched.IsMediumMatched)
}

func TestMatchingRulesDoNotRetroMatch(t *testing.T) {
	db := newTestDB(t)
	matching := NewMatchingService(db)
	orders := NewOrderService(db, matching)

	created, err := orders.Create(OrderInput{
		ProductName:   "상품1",
		Quantity:      1,
		PurchasePlace: "A",
		SalesPlace:    "B",
	})
	require.NoError(t, err)
	assert.False(t, created.IsMediumMatched)

	_, err = matching.CreateOrderMatching(models.OrderMatching{
		MediumName:    "M1",
		PurchasePlace: "A",
		SalesPlace:    "B",
	})
	require.NoError(t, err)

	// the rule applies to new records only
	var stored models.Order
	require.NoError(t, db.First(&stored, created.ID).Error)
	assert.False(t, stored.IsMediumMatched)
	assert.Empty(t, stored.MediumName)
}
