package domain

import "time"

// Credential é um acesso guardado do painel "Acessos". O campo Password é
// um segredo opaco, devolvido apenas para o dono do painel.
type Credential struct {
	ID        string    `json:"id"`
	Service   string    `json:"service"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	URL       *string   `json:"url,omitempty"`
	Category  *string   `json:"category,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type FinancialType string

const (
	FinancialIncome  FinancialType = "INCOME"
	FinancialExpense FinancialType = "EXPENSE"
)

type FinancialStatus string

const (
	FinancialPaid    FinancialStatus = "PAID"
	FinancialPending FinancialStatus = "PENDING"
)

type FinancialRecord struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"`
	Type        FinancialType   `json:"type"`
	Category    *string         `json:"category,omitempty"`
	DueDate     *time.Time      `json:"dueDate,omitempty"`
	Status      FinancialStatus `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type TaskStatus string

const (
	TaskTodo       TaskStatus = "TODO"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskDone       TaskStatus = "DONE"
)

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Status      TaskStatus `json:"status"`
	Priority    *string    `json:"priority,omitempty"`
	Assignee    *string    `json:"assignee,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type Product struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Plataform  *string   `json:"plataform,omitempty"`
	Status     string    `json:"status"`
	DriveLink  *string   `json:"driveLink,omitempty"`
	MiroLink   *string   `json:"miroLink,omitempty"`
	NotionLink *string   `json:"notionLink,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
