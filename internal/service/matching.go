package service

import (
	"errors"
	"fmt"

	"github.com/CammeCommerce/Backend-sub000/internal/models"

	"gorm.io/gorm"
)

// MatchingService owns the lookup tables that annotate raw transactions with
// medium / settlement company names. Lookups are exact and case-sensitive on
// the natural key pair; names are copied onto the transaction, never
// foreign-keyed.
type MatchingService struct {
	DB *gorm.DB
}

func NewMatchingService(db *gorm.DB) *MatchingService {
	return &MatchingService{DB: db}
}

// OrderMatch is the result of an order rule lookup.
type OrderMatch struct {
	MediumName            string
	SettlementCompanyName string
}

// ResolveOrderMatch looks up the live rule for (purchasePlace, salesPlace).
// Returns nil when no rule exists. Uniqueness is enforced at rule creation;
// if corruption ever produces more than one rule the first found wins.
func (s *MatchingService) ResolveOrderMatch(purchasePlace, salesPlace string) (*OrderMatch, error) {
	var rule models.OrderMatching
	err := s.DB.
		Where("purchase_place = ? AND sales_place = ?", purchasePlace, salesPlace).
		First(&rule).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup order matching: %w", err)
	}
	return &OrderMatch{
		MediumName:            rule.MediumName,
		SettlementCompanyName: rule.SettlementCompanyName,
	}, nil
}

// ResolveDepositMatch looks up the live rule for (accountAlias, purpose) and
// returns the medium name. found is false when no rule exists.
func (s *MatchingService) ResolveDepositMatch(accountAlias, purpose string) (mediumName string, found bool, err error) {
	var rule models.DepositMatching
	err = s.DB.
		Where("account_alias = ? AND purpose = ?", accountAlias, purpose).
		First(&rule).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("lookup deposit matching: %w", err)
	}
	return rule.MediumName, true, nil
}

// ResolveWithdrawalMatch looks up the live rule for (accountAlias, purpose)
// and returns the medium name. found is false when no rule exists.
func (s *MatchingService) ResolveWithdrawalMatch(accountAlias, purpose string) (mediumName string, found bool, err error) {
	var rule models.WithdrawalMatching
	err = s.DB.
		Where("account_alias = ? AND purpose = ?", accountAlias, purpose).
		First(&rule).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("lookup withdrawal matching: %w", err)
	}
	return rule.MediumName, true, nil
}

// ApplyOrderMatch annotates an order in place. A name the caller already
// supplied is never overwritten by a rule lookup. The matched flags are
// recomputed from name presence, so a rule that carries only one of the two
// names marks only that flag.
func (s *MatchingService) ApplyOrderMatch(o *models.Order) error {
	if o.MediumName == "" || o.SettlementCompanyName == "" {
		match, err := s.ResolveOrderMatch(o.PurchasePlace, o.SalesPlace)
		if err != nil {
			return err
		}
		if match != nil {
			if o.MediumName == "" {
				o.MediumName = match.MediumName
			}
			if o.SettlementCompanyName == "" {
				o.SettlementCompanyName = match.SettlementCompanyName
			}
		}
	}
	o.IsMediumMatched = o.MediumName != ""
	o.IsSettlementCompanyMatched = o.SettlementCompanyName != ""
	return nil
}

// ApplyDepositMatch annotates a deposit in place; see ApplyOrderMatch.
func (s *MatchingService) ApplyDepositMatch(d *models.Deposit) error {
	if d.MediumName == "" {
		mediumName, found, err := s.ResolveDepositMatch(d.AccountAlias, d.Purpose)
		if err != nil {
			return err
		}
		if found {
			d.MediumName = mediumName
		}
	}
	d.IsMediumMatched = d.MediumName != ""
	return nil
}

// ApplyWithdrawalMatch annotates a withdrawal in place; see ApplyOrderMatch.
func (s *MatchingService) ApplyWithdrawalMatch(w *models.Withdrawal) error {
	if w.MediumName == "" {
		mediumName, found, err := s.ResolveWithdrawalMatch(w.AccountAlias, w.Purpose)
		if err != nil {
			return err
		}
		if found {
			w.MediumName = mediumName
		}
	}
	w.IsMediumMatched = w.MediumName != ""
	return nil
}

// CreateOrderMatching inserts a new order rule. The duplicate check and the
// insert run in one transaction so two concurrent creations of the same pair
// cannot both pass the check. Existing orders are not re-matched.
func (s *MatchingService) CreateOrderMatching(rule models.OrderMatching) (*models.OrderMatching, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.OrderMatching{}).
			Where("purchase_place = ? AND sales_place = ?", rule.PurchasePlace, rule.SalesPlace).
			Count(&count).Error; err != nil {
			return fmt.Errorf("check duplicate: %w", err)
		}
		if count > 0 {
			return ErrDuplicateMatchingRule
		}
		if err := tx.Create(&rule).Error; err != nil {
			return fmt.Errorf("create order matching: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// CreateDepositMatching inserts a new deposit rule; see CreateOrderMatching.
func (s *MatchingService) CreateDepositMatching(rule models.DepositMatching) (*models.DepositMatching, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.DepositMatching{}).
			Where("account_alias = ? AND purpose = ?", rule.AccountAlias, rule.Purpose).
			Count(&count).Error; err != nil {
			return fmt.Errorf("check duplicate: %w", err)
		}
		if count > 0 {
			return ErrDuplicateMatchingRule
		}
		if err := tx.Create(&rule).Error; err != nil {
			return fmt.Errorf("create deposit matching: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// CreateWithdrawalMatching inserts a new withdrawal rule; see CreateOrderMatching.
func (s *MatchingService) CreateWithdrawalMatching(rule models.WithdrawalMatching) (*models.WithdrawalMatching, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.WithdrawalMatching{}).
			Where("account_alias = ? AND purpose = ?", rule.AccountAlias, rule.Purpose).
			Count(&count).Error; err != nil {
			return fmt.Errorf("check duplicate: %w", err)
		}
		if count > 0 {
			return ErrDuplicateMatchingRule
		}
		if err := tx.Create(&rule).Error; err != nil {
			return fmt.Errorf("create withdrawal matching: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// ListOrderMatchings returns live order rules, newest first.
func (s *MatchingService) ListOrderMatchings() ([]models.OrderMatching, error) {
	var rules []models.OrderMatching
	if err := s.DB.Order("id DESC").Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("list order matchings: %w", err)
	}
	return rules, nil
}

// ListDepositMatchings returns live deposit rules, newest first.
func (s *MatchingService) ListDepositMatchings() ([]models.DepositMatching, error) {
	var rules []models.DepositMatching
	if err := s.DB.Order("id DESC").Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("list deposit matchings: %w", err)
	}
	return rules, nil
}

// ListWithdrawalMatchings returns live withdrawal rules, newest first.
func (s *MatchingService) ListWithdrawalMatchings() ([]models.WithdrawalMatching, error) {
	var rules []models.WithdrawalMatching
	if err := s.DB.Order("id DESC").Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("list withdrawal matchings: %w", err)
	}
	return rules, nil
}

// DeleteOrderMatching soft-deletes a rule; the pair becomes creatable again.
func (s *MatchingService) DeleteOrderMatching(id uint) error {
	res := s.DB.Delete(&models.OrderMatching{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete order matching: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// DeleteDepositMatching soft-deletes a rule; the pair becomes creatable again.
func (s *MatchingService) DeleteDepositMatching(id uint) error {
	res := s.DB.Delete(&models.DepositMatching{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete deposit matching: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// DeleteWithdrawalMatching soft-deletes a rule; the pair becomes creatable again.
func (s *MatchingService) DeleteWithdrawalMatching(id uint) error {
	res := s.DB.Delete(&models.WithdrawalMatching{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete withdrawal matching: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
