package entity

// Role constants for User
const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

// Status constants for Automation
const (
	AutomationStatusPending  = "pending"
	AutomationStatusApproved = "approved"
	AutomationStatusRejected = "rejected"
)

// Status constants for Redemption
const (
	RedemptionStatusPending   = "pending"
	RedemptionStatusApproved  = "approved"
	RedemptionStatusRejected  = "rejected"
	RedemptionStatusFulfilled = "fulfilled"
)

// Frequency constants for Automation
const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
)

// Type constants for CreditTransaction
const (
	TransactionEarned = "earned"
	TransactionSpent  = "spent"
)

// Type constants for Notification
const (
	NotificationInfo        = "info"
	NotificationSuccess     = "success"
	NotificationWarning     = "warning"
	NotificationAchievement = "achievement"
)

// Type constants for Activity
const (
	ActivityAutomationSubmitted = "automation_submitted"
	ActivityAutomationApproved  = "automation_approved"
	ActivityCreditsEarned       = "credits_earned"
	ActivityRedemptionRequested = "redemption_requested"
	ActivityRedemptionApproved  = "redemption_approved"
	ActivityBadgeEarned         = "badge_earned"
	ActivityLevelUp             = "level_up"
)

// Rarity constants for Badge
const (
	RarityCommon    = "common"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

// Type constants for Challenge
const (
	ChallengeIndividual = "individual"
	ChallengeTeam       = "team"
	ChallengeDepartment = "department"
)

// Metric constants for Challenge
const (
	MetricCredits     = "credits"
	MetricAutomations = "automations"
	MetricTimeSaved   = "time_saved"
)

// Status constants for Challenge
const (
	ChallengeUpcoming  = "upcoming"
	ChallengeActive    = "active"
	ChallengeCompleted = "completed"
)

// AutomationCategories is the fixed set of submission categories
var AutomationCategories = []string{
	"Data Processing",
	"Report Generation",
	"Email Management",
	"File Organization",
	"Testing",
	"Deployment",
	"Monitoring",
	"Documentation",
	"Communication",
	"Other",
}
