package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/fintrack-app/fintrack-backend/internal/domain"
	"github.com/fintrack-app/fintrack-backend/internal/ledger"
	"github.com/fintrack-app/fintrack-backend/internal/usecase/dashboard"
)

// Monetary amounts travel as strings on the wire and are parsed into
// decimals at the boundary; dates travel as "YYYY-MM-DD".

type addTransactionRequest struct {
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	CategoryID  string `json:"categoryId"`
	BankID      string `json:"bankId"`
	Description string `json:"description"`
	Date        string `json:"date,omitempty"`
}

func (s *Server) handleAddTransaction(w http.ResponseWriter, r *http.Request) {
	var req addTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "malformed request body")
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "invalid amount format")
		return
	}

	input := ledger.TransactionInput{
		Type:        domain.TransactionType(req.Type),
		Amount:      amount,
		CategoryID:  req.CategoryID,
		BankID:      req.BankID,
		Description: req.Description,
	}
	if req.Date != "" {
		date, err := domain.ParseDate(req.Date)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "invalid date format, expected YYYY-MM-DD")
			return
		}
		input.Date = date
	}

	tx, err := s.Store.AddTransaction(input)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, tx)
}

type transactionListResponse struct {
	Transactions  []domain.Transaction `json:"transactions"`
	TotalIncome   decimal.Decimal      `json:"totalIncome"`
	TotalExpenses decimal.Decimal      `json:"totalExpenses"`
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	filter := ledger.TransactionFilter{
		Type:       domain.TransactionType(r.URL.Query().Get("type")),
		CategoryID: r.URL.Query().Get("categoryId"),
		BankID:     r.URL.Query().Get("bankId"),
	}

	if v := r.URL.Query().Get("startDate"); v != "" {
		date, err := domain.ParseDate(v)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "invalid startDate, expected YYYY-MM-DD")
			return
		}
		filter.StartDate = date
	}
	if v := r.URL.Query().Get("endDate"); v != "" {
		date, err := domain.ParseDate(v)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "invalid endDate, expected YYYY-MM-DD")
			return
		}
		filter.EndDate = date
	}

	filtered := ledger.FilterTransactions(s.Store.Transactions(), filter)
	income, expenses := ledger.SumByType(filtered)

	writeJSON(w, http.StatusOK, transactionListResponse{
		Transactions:  ledger.SortTransactionsByDateDesc(filtered),
		TotalIncome:   income,
		TotalExpenses: expenses,
	})
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.DeleteTransaction(chi.URLParam(r, "id")); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "failed to delete transaction")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type addBankRequest struct {
	Name              string `json:"name"`
	InitialBalance    string `json:"initialBalance"`
	InterestRate      string `json:"interestRate,omitempty"`
	InterestFrequency string `json:"interestFrequency,omitempty"`
}

func (s *Server) handleAddBank(w http.ResponseWriter, r *http.Request) {
	var req addBankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "malformed request body")
		return
	}

	initialBalance, err := decimal.NewFromString(req.InitialBalance)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "invalid initialBalance format")
		return
	}

	input := ledger.BankInput{
		Name:              req.Name,
		InitialBalance:    initialBalance,
		InterestFrequency: domain.InterestFrequency(req.InterestFrequency),
	}
	if req.InterestRate != "" {
		rate, err := decimal.NewFromString(req.InterestRate)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "invalid interestRate format")
			return
		}
		input.InterestRate = &rate
	}

	bank, err := s.Store.AddBank(input)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, bank)
}

type bankListResponse struct {
	Banks        []domain.Bank   `json:"banks"`
	TotalBalance decimal.Decimal `json:"totalBalance"`
}

func (s *Server) handleListBanks(w http.ResponseWriter, _ *http.Request) {
	banks := ledger.SortBanksByBalanceDesc(s.Store.Banks())

	total := decimal.Zero
	for _, b := range banks {
		total = total.Add(b.Balance)
	}

	writeJSON(w, http.StatusOK, bankListResponse{Banks: banks, TotalBalance: total})
}

func (s *Server) handleDeleteBank(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.DeleteBank(chi.URLParam(r, "id")); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "failed to delete bank")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type updateBalanceRequest struct {
	Balance string `json:"balance"`
}

func (s *Server) handleUpdateBankBalance(w http.ResponseWriter, r *http.Request) {
	var req updateBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "malformed request body")
		return
	}

	balance, err := decimal.NewFromString(req.Balance)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "invalid balance format")
		return
	}

	if err := s.Store.UpdateBankBalance(chi.URLParam(r, "id"), balance); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type applyInterestResponse struct {
	Bank        domain.Bank         `json:"bank"`
	Transaction *domain.Transaction `json:"transaction,omitempty"`
}

func (s *Server) handleApplyBankInterest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	tx, err := s.Store.ApplyBankInterest(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	for _, bank := range s.Store.Banks() {
		if bank.ID == id {
			writeJSON(w, http.StatusOK, applyInterestResponse{Bank: bank, Transaction: tx})
			return
		}
	}
	writeJSONError(w, http.StatusNotFound, "not_found", "bank not found")
}

type addGoalRequest struct {
	Name          string `json:"name"`
	TargetAmount  string `json:"targetAmount"`
	CurrentAmount string `json:"currentAmount,omitempty"`
	TargetDate    string `json:"targetDate"`
	Description   string `json:"description"`
}

func (s *Server) handleAddGoal(w http.ResponseWriter, r *http.Request) {
	var req addGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "malformed request body")
		return
	}

	targetAmount, err := decimal.NewFromString(req.TargetAmount)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "invalid targetAmount format")
		return
	}

	input := ledger.GoalInput{
		Name:         req.Name,
		TargetAmount: targetAmount,
		Description:  req.Description,
	}
	if req.CurrentAmount != "" {
		current, err := decimal.NewFromString(req.CurrentAmount)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "invalid currentAmount format")
			return
		}
		input.CurrentAmount = current
	}
	if req.TargetDate != "" {
		date, err := domain.ParseDate(req.TargetDate)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "invalid targetDate format, expected YYYY-MM-DD")
			return
		}
		input.TargetDate = date
	}

	goal, err := s.Store.AddGoal(input)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, goal)
}

func (s *Server) handleListGoals(w http.ResponseWriter, _ *http.Request) {
	overviews := s.Dashboard.GoalOverviews(time.Now())

	goals := make([]goalResponse, 0, len(overviews))
	for _, o := range overviews {
		goals = append(goals, newGoalResponse(o))
	}
	writeJSON(w, http.StatusOK, map[string]any{"goals": goals})
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.DeleteGoal(chi.URLParam(r, "id")); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "failed to delete goal")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type progressRequest struct {
	Amount string `json:"amount"`
}

func (s *Server) handleUpdateGoalProgress(w http.ResponseWriter, r *http.Request) {
	var req progressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "malformed request body")
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "invalid amount format")
		return
	}

	goal, err := s.Store.UpdateGoalProgress(chi.URLParam(r, "id"), amount)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, goal)
}

func (s *Server) handleListCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"categories": s.Store.Categories()})
}

type summaryResponse struct {
	TotalBalance       decimal.Decimal      `json:"totalBalance"`
	MonthlyIncome      decimal.Decimal      `json:"monthlyIncome"`
	MonthlyExpenses    decimal.Decimal      `json:"monthlyExpenses"`
	SavingsRate        decimal.Decimal      `json:"savingsRate"`
	RecentTransactions []domain.Transaction `json:"recentTransactions"`
	Banks              []domain.Bank        `json:"banks"`
	Goals              []goalResponse       `json:"goals"`
}

func (s *Server) handleDashboard(w http.ResponseWriter, _ *http.Request) {
	now := time.Now()
	summary := s.Dashboard.GetSummary(now)

	overviews := s.Dashboard.GoalOverviews(now)
	goals := make([]goalResponse, 0, len(overviews))
	for _, o := range overviews {
		goals = append(goals, newGoalResponse(o))
	}

	writeJSON(w, http.StatusOK, summaryResponse{
		TotalBalance:       summary.TotalBalance,
		MonthlyIncome:      summary.MonthlyIncome,
		MonthlyExpenses:    summary.MonthlyExpenses,
		SavingsRate:        summary.SavingsRate,
		RecentTransactions: summary.RecentTransactions,
		Banks:              ledger.SortBanksByBalanceDesc(s.Store.Banks()),
		Goals:              goals,
	})
}

func (s *Server) handleLoadDemoData(w http.ResponseWriter, _ *http.Request) {
	if err := s.Store.LoadDemoData(s.Demo); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "failed to load demo data")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleResetAllData(w http.ResponseWriter, _ *http.Request) {
	if err := s.Store.ResetAllData(); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "server_error", "failed to reset data")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type goalResponse struct {
	domain.Goal
	ProgressPercent decimal.Decimal `json:"progressPercent"`
	ClampedPercent  decimal.Decimal `json:"clampedPercent"`
	DaysRemaining   int             `json:"daysRemaining"`
	Overdue         bool            `json:"overdue"`
	Completed       bool            `json:"completed"`
}

func newGoalResponse(o dashboard.GoalOverview) goalResponse {
	return goalResponse{
		Goal:            o.Goal,
		ProgressPercent: o.ProgressPercent,
		ClampedPercent:  o.ClampedPercent,
		DaysRemaining:   o.DaysRemaining,
		Overdue:         o.Overdue,
		Completed:       o.Completed,
	}
}

func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSONError(w, http.StatusNotFound, "not_found", err.Error())
	default:
		writeJSONError(w, http.StatusBadRequest, "validation_failed", err.Error())
	}
}
