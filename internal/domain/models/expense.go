package models

// ActivityType enumerates the spending categories tracked by the expense log.
type ActivityType string

const (
	ActivitySeeds          ActivityType = "seeds"
	ActivityFertilizer     ActivityType = "fertilizer"
	ActivityPesticides     ActivityType = "pesticides"
	ActivityLabor          ActivityType = "labor"
	ActivityIrrigation     ActivityType = "irrigation"
	ActivityEquipment      ActivityType = "equipment"
	ActivityTransportation ActivityType = "transportation"
	ActivityOther          ActivityType = "other"
)

// Expense captures a single farm spending record. Date is an ISO-8601
// calendar date (YYYY-MM-DD).
type Expense struct {
	ID           string       `json:"id"`
	Date         string       `json:"date"`
	ActivityType ActivityType `json:"activityType"`
	Cost         float64      `json:"cost"`
	Notes        string       `json:"notes,omitempty"`
}

// ExpenseInput is the payload accepted when creating an expense; the store
// assigns the id.
type ExpenseInput struct {
	Date         string       `json:"date" binding:"required"`
	ActivityType ActivityType `json:"activityType" binding:"required"`
	Cost         float64      `json:"cost"`
	Notes        string       `json:"notes"`
}

// ExpenseUpdate carries a partial field replacement for an existing expense.
// Nil pointers leave the corresponding field untouched.
type ExpenseUpdate struct {
	Date         *string       `json:"date"`
	ActivityType *ActivityType `json:"activityType"`
	Cost         *float64      `json:"cost"`
	Notes        *string       `json:"notes"`
}
