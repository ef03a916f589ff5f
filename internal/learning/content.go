// Package learning serves the learning-hub catalog and summarizes completion
// progress against it.
package learning

import (
	"fmt"

	"github.com/mamadbah2/farmplan/internal/domain/models"
)

// Modules is the fixed learning-hub catalog in display order.
var Modules = []models.LearningModule{
	{
		ID:    "middleman",
		Title: "Spot Middleman Cheating",
		Icon:  "account-alert",
		Lessons: []models.Lesson{
			{
				ID:      "middleman-1",
				Title:   "Warning Signs",
				Content: "Middlemen often exploit farmers by manipulating prices and weights. Learn to recognize the red flags.",
				Tips: []string{
					"Always verify weight measurements yourself",
					"Get price quotes from multiple buyers before selling",
					"Be wary of middlemen who pressure quick decisions",
					"Check current market rates on your phone before negotiating",
					"Join farmer groups to share information about honest buyers",
				},
			},
			{
				ID:      "middleman-2",
				Title:   "Common Tricks",
				Content: "Understanding common exploitation tactics helps you protect your income.",
				Tips: []string{
					"False weighing: Tampered scales show less weight than actual",
					"Quality downgrading: Claiming good produce as lower quality",
					"Delayed payment: Promising higher prices but never paying",
					"Hidden deductions: Unexpected charges for transport or storage",
					"Price manipulation: Claiming market prices are lower than reality",
				},
			},
			{
				ID:      "middleman-3",
				Title:   "Protection Strategies",
				Content: "Practical steps to ensure fair treatment and payment.",
				Tips: []string{
					"Use government mandis (markets) with regulated prices",
					"Carry your own weighing scale for verification",
					"Document all transactions with photos and receipts",
					"Form farmer cooperatives to negotiate better prices",
					"Use government apps like eNAM for price information",
				},
			},
		},
	},
	{
		ID:    "pricing",
		Title: "Fair Market Prices",
		Icon:  "cash",
		Lessons: []models.Lesson{
			{
				ID:      "pricing-1",
				Title:   "How Prices Work",
				Content: "Agricultural prices are affected by supply, demand, season, and government policies.",
				Tips: []string{
					"Prices are highest when supply is low and demand is high",
					"Seasonal factors: Harvest time often has lowest prices",
					"Government MSP (Minimum Support Price) sets a floor price",
					"Quality and freshness affect pricing significantly",
					"Transportation costs impact final prices in urban markets",
				},
			},
			{
				ID:      "pricing-2",
				Title:   "Finding Fair Prices",
				Content: "Resources and methods to discover accurate market prices.",
				Tips: []string{
					"Check government MSP announcements regularly",
					"Use eNAM app for real-time mandi prices nationwide",
					"Compare prices across multiple nearby markets",
					"Consider transportation and handling costs",
					"Track price trends to time your sales better",
				},
			},
			{
				ID:      "pricing-3",
				Title:   "Negotiation Tips",
				Content: "Effective strategies to get the best price for your produce.",
				Tips: []string{
					"Know your bottom line (break-even price) before negotiating",
					"Show quality samples to justify higher prices",
					"Be willing to walk away from unfair offers",
					"Build long-term relationships with honest buyers",
					"Time your harvest to avoid peak supply periods if possible",
				},
			},
		},
	},
	{
		ID:    "insurance",
		Title: "Crop Insurance",
		Icon:  "shield-check",
		Lessons: []models.Lesson{
			{
				ID:      "insurance-1",
				Title:   "Why Insurance Matters",
				Content: "Crop insurance protects farmers from losses due to natural calamities and price crashes.",
				Tips: []string{
					"Protects against drought, flood, pests, and diseases",
					"Government subsidizes 50% of premium costs",
					"Provides financial security during crop failure",
					"Helps avoid falling into debt after bad seasons",
					"Available for most major crops and regions",
				},
			},
			{
				ID:      "insurance-2",
				Title:   "PMFBY Scheme",
				Content: "Pradhan Mantri Fasal Bima Yojana is the main government crop insurance program.",
				Tips: []string{
					"Very low premium: 2% for Kharif, 1.5% for Rabi crops",
					"Covers all stages from sowing to post-harvest",
					"Compensation based on area-level crop loss assessment",
					"Automatic enrollment if you have crop loan",
					"Apply through banks, CSCs, or online portal",
				},
			},
			{
				ID:      "insurance-3",
				Title:   "Making Claims",
				Content: "Steps to successfully claim crop insurance compensation.",
				Tips: []string{
					"Report crop loss within 72 hours to insurance company",
					"Provide required documents: land records, photos",
					"Cooperate with field inspection by officials",
					"Follow up regularly on claim status",
					"Keep copies of all applications and receipts",
				},
			},
		},
	},
	{
		ID:    "diversification",
		Title: "Crop Diversification",
		Icon:  "flower",
		Lessons: []models.Lesson{
			{
				ID:      "diversification-1",
				Title:   "Benefits of Diversification",
				Content: "Growing multiple crops reduces risk and increases income stability.",
				Tips: []string{
					"Spreads risk: If one crop fails, others may succeed",
					"Better soil health through crop rotation",
					"Multiple income streams throughout the year",
					"Reduces pest and disease buildup",
					"Takes advantage of different market opportunities",
				},
			},
			{
				ID:      "diversification-2",
				Title:   "Choosing Crops",
				Content: "Selecting the right combination of crops for your land and market.",
				Tips: []string{
					"Consider soil type and water availability",
					"Mix short and long duration crops",
					"Combine food crops with cash crops",
					"Include legumes to improve soil nitrogen",
					"Research local market demand before planting",
				},
			},
			{
				ID:      "diversification-3",
				Title:   "Implementation Strategy",
				Content: "Practical steps to transition to diversified farming.",
				Tips: []string{
					"Start small: Add one new crop per season",
					"Learn from successful farmers in your area",
					"Get training from agricultural extension officers",
					"Plan crop calendar to optimize land use",
					"Keep detailed records to evaluate profitability",
				},
			},
		},
	},
	{
		ID:    "finance",
		Title: "Debt vs Equity",
		Icon:  "bank",
		Lessons: []models.Lesson{
			{
				ID:      "finance-1",
				Title:   "Understanding Debt",
				Content: "Loans must be repaid with interest, regardless of crop success or failure.",
				Tips: []string{
					"Debt creates fixed obligations that must be paid",
					"High interest rates (especially from moneylenders) are dangerous",
					"Prefer bank loans over informal loans (lower interest)",
					"Calculate if expected income can cover loan + interest",
					"Avoid borrowing for consumption, only for productive investments",
				},
			},
			{
				ID:      "finance-2",
				Title:   "Better Financing Options",
				Content: "Government schemes and cooperative options offer safer financing.",
				Tips: []string{
					"KCC (Kisan Credit Card): Low interest farm loans from banks",
					"Government subsidies: Up to 50% off for equipment, seeds",
					"SHG (Self Help Groups): Community-based savings and lending",
					"Cooperative societies: Shared investments and profits",
					"PM-KISAN: Direct income support of ₹6000/year",
				},
			},
			{
				ID:      "finance-3",
				Title:   "Debt Management",
				Content: "If already in debt, smart strategies can help you recover.",
				Tips: []string{
					"List all debts: Amount, interest rate, due dates",
					"Prioritize high-interest debts first",
					"Negotiate with lenders for extended payment terms",
					"Consider debt restructuring schemes from banks",
					"Seek help from agricultural department before crisis deepens",
				},
			},
		},
	},
}

// Module looks up one catalog module by id.
func Module(id string) (models.LearningModule, error) {
	for _, module := range Modules {
		if module.ID == id {
			return module, nil
		}
	}
	return models.LearningModule{}, fmt.Errorf("unknown learning module %q", id)
}

// Lesson verifies a lesson exists inside a module.
func Lesson(moduleID, lessonID string) (models.Lesson, error) {
	module, err := Module(moduleID)
	if err != nil {
		return models.Lesson{}, err
	}
	for _, lesson := range module.Lessons {
		if lesson.ID == lessonID {
			return lesson, nil
		}
	}
	return models.Lesson{}, fmt.Errorf("unknown lesson %q in module %q", lessonID, moduleID)
}

// Progress summarizes completion per catalog module.
func Progress(progress models.LearningProgress) []models.ModuleProgress {
	out := make([]models.ModuleProgress, 0, len(Modules))
	for _, module := range Modules {
		completed := 0
		for _, lesson := range module.Lessons {
			if progress.Completed(module.ID, lesson.ID) {
				completed++
			}
		}

		percent := 0.0
		if len(module.Lessons) > 0 {
			percent = float64(completed) / float64(len(module.Lessons)) * 100
		}

		out = append(out, models.ModuleProgress{
			ModuleID:  module.ID,
			Completed: completed,
			Total:     len(module.Lessons),
			Percent:   percent,
		})
	}
	return out
}
