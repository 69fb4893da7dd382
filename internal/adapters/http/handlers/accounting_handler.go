package handlers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"nile-backoffice/internal/adapters/http/middleware"
	"nile-backoffice/internal/adapters/persistence/models"
	"nile-backoffice/internal/adapters/persistence/repositories"
	"nile-backoffice/internal/pkg/amount"
	"nile-backoffice/internal/pkg/pagination"
	"nile-backoffice/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AccountingHandler handles accounting endpoints: ledger accounts,
// transactions, safes and banks
type AccountingHandler struct {
	accountRepo     *repositories.AccountRepository
	transactionRepo *repositories.TransactionRepository
	safeRepo        *repositories.SafeRepository
	bankRepo        *repositories.BankRepository
}

// NewAccountingHandler creates a new accounting handler
func NewAccountingHandler(
	accountRepo *repositories.AccountRepository,
	transactionRepo *repositories.TransactionRepository,
	safeRepo *repositories.SafeRepository,
	bankRepo *repositories.BankRepository,
) *AccountingHandler {
	return &AccountingHandler{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		safeRepo:        safeRepo,
		bankRepo:        bankRepo,
	}
}

// ============================================================
// Ledger Accounts
// ============================================================

// AccountRequest carries the writable account fields
type AccountRequest struct {
	Name           string `json:"name"`
	Type           string `json:"type"`
	Currency       string `json:"currency"`
	OpeningBalance string `json:"opening_balance"`
	Notes          string `json:"notes"`
}

func validAccountType(t string) bool {
	switch t {
	case models.AccountTypeAsset, models.AccountTypeLiability,
		models.AccountTypeRevenue, models.AccountTypeExpense:
		return true
	}
	return false
}

// ListAccounts lists ledger accounts
// @Summary List accounts
// @Tags Accounting
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param search query string false "Search by name"
// @Param type query string false "Asset, Liability, Revenue or Expense"
// @Success 200 {object} response.Response
// @Router /accounts [get]
func (h *AccountingHandler) ListAccounts(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	accounts, total, err := h.accountRepo.List(c.Context(), &repositories.DateRangeFilter{
		Search: c.Query("search"),
		Type:   c.Query("type"),
		Offset: params.Offset,
		Limit:  params.Limit,
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to list accounts")
	}

	return response.Success(c, "Accounts retrieved successfully", fiber.Map{
		"accounts": accounts,
		"meta":     pagination.GetMeta(params, total),
	})
}

// GetAccount gets an account by ID
// @Summary Get account
// @Tags Accounting
// @Produce json
// @Security BearerAuth
// @Param id path int true "Account ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /accounts/{id} [get]
func (h *AccountingHandler) GetAccount(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	account, err := h.accountRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Account not found")
		}
		return response.InternalServerError(c, "Failed to get account")
	}

	return response.Success(c, "Account retrieved successfully", fiber.Map{
		"account": account,
	})
}

// CreateAccount creates a ledger account
// @Summary Create account
// @Tags Accounting
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body AccountRequest true "Account data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /accounts [post]
func (h *AccountingHandler) CreateAccount(c *fiber.Ctx) error {
	var req AccountRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return response.BadRequest(c, "Name is required")
	}
	if !validAccountType(req.Type) {
		return response.BadRequest(c, "Invalid account type")
	}

	exists, err := h.accountRepo.ExistsByName(c.Context(), req.Name)
	if err != nil {
		return response.InternalServerError(c, "Failed to create account")
	}
	if exists {
		return response.Conflict(c, "Account name already exists")
	}

	userID := middleware.CurrentUserID(c)
	account := &models.Account{
		Name:           req.Name,
		Type:           req.Type,
		Currency:       req.Currency,
		OpeningBalance: amount.Format(amount.Parse(req.OpeningBalance)),
		Notes:          req.Notes,
		CreatedBy:      userID,
		UpdatedBy:      userID,
	}

	if err := h.accountRepo.Create(c.Context(), account); err != nil {
		return response.InternalServerError(c, "Failed to create account")
	}

	return response.Created(c, "Account created successfully", fiber.Map{
		"account": account,
	})
}

// UpdateAccount updates a ledger account
// @Summary Update account
// @Tags Accounting
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Account ID"
// @Param body body AccountRequest true "Account data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /accounts/{id} [put]
func (h *AccountingHandler) UpdateAccount(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var req AccountRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	account, err := h.accountRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Account not found")
		}
		return response.InternalServerError(c, "Failed to get account")
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return response.BadRequest(c, "Name is required")
	}
	if !validAccountType(req.Type) {
		return response.BadRequest(c, "Invalid account type")
	}

	if req.Name != account.Name {
		exists, err := h.accountRepo.ExistsByName(c.Context(), req.Name)
		if err != nil {
			return response.InternalServerError(c, "Failed to update account")
		}
		if exists {
			return response.Conflict(c, "Account name already exists")
		}
	}

	account.Name = req.Name
	account.Type = req.Type
	account.Currency = req.Currency
	account.OpeningBalance = amount.Format(amount.Parse(req.OpeningBalance))
	account.Notes = req.Notes
	account.UpdatedBy = middleware.CurrentUserID(c)

	if err := h.accountRepo.Update(c.Context(), account); err != nil {
		return response.InternalServerError(c, "Failed to update account")
	}

	return response.Success(c, "Account updated successfully", fiber.Map{
		"account": account,
	})
}

// DeleteAccount deletes a ledger account. Accounts with booked
// transactions cannot be removed.
// @Summary Delete account
// @Tags Accounting
// @Produce json
// @Security BearerAuth
// @Param id path int true "Account ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /accounts/{id} [delete]
func (h *AccountingHandler) DeleteAccount(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	count, err := h.accountRepo.CountTransactions(c.Context(), uint(id))
	if err != nil {
		return response.InternalServerError(c, "Failed to delete account")
	}
	if count > 0 {
		return response.Conflict(c, "Account has transactions booked against it")
	}

	if err := h.accountRepo.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Account not found")
		}
		return response.InternalServerError(c, "Failed to delete account")
	}

	return response.Success(c, "Account deleted successfully", nil)
}

// ============================================================
// Transactions
// ============================================================

// TransactionRequest carries the writable transaction fields
type TransactionRequest struct {
	Date        *time.Time `json:"date"`
	AccountID   uint       `json:"account_id"`
	Direction   string     `json:"direction"`
	Amount      string     `json:"amount"`
	Currency    string     `json:"currency"`
	Description string     `json:"description"`
	Reference   string     `json:"reference"`
}

// ListTransactions lists ledger transactions
// @Summary List transactions
// @Tags Accounting
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param search query string false "Search serial, description or reference"
// @Param account_id query int false "Filter by account"
// @Param direction query string false "Debit or Credit"
// @Param dateFrom query string false "Start date (YYYY-MM-DD)"
// @Param dateTo query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Router /transactions [get]
func (h *AccountingHandler) ListTransactions(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	filter := &repositories.TransactionFilter{
		Search:    c.Query("search"),
		Direction: c.Query("direction"),
		Offset:    params.Offset,
		Limit:     params.Limit,
	}
	if raw := c.Query("account_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			accountID := uint(id)
			filter.AccountID = &accountID
		}
	}
	if from := c.Query("dateFrom"); from != "" {
		filter.DateFrom = &from
	}
	if to := c.Query("dateTo"); to != "" {
		filter.DateTo = &to
	}

	transactions, total, err := h.transactionRepo.List(c.Context(), filter)
	if err != nil {
		return response.InternalServerError(c, "Failed to list transactions")
	}

	return response.Success(c, "Transactions retrieved successfully", fiber.Map{
		"transactions": transactions,
		"meta":         pagination.GetMeta(params, total),
	})
}

// GetTransaction gets a transaction by ID
// @Summary Get transaction
// @Tags Accounting
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /transactions/{id} [get]
func (h *AccountingHandler) GetTransaction(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	transaction, err := h.transactionRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Transaction not found")
		}
		return response.InternalServerError(c, "Failed to get transaction")
	}

	return response.Success(c, "Transaction retrieved successfully", fiber.Map{
		"transaction": transaction,
	})
}

// CreateTransaction books a ledger transaction. The serial number is
// assigned from the running row count.
// @Summary Create transaction
// @Tags Accounting
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body TransactionRequest true "Transaction data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /transactions [post]
func (h *AccountingHandler) CreateTransaction(c *fiber.Ctx) error {
	var req TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.AccountID == 0 {
		return response.BadRequest(c, "Account is required")
	}
	if req.Direction != models.DirectionDebit && req.Direction != models.DirectionCredit {
		return response.BadRequest(c, "Direction must be Debit or Credit")
	}

	if _, err := h.accountRepo.GetByID(c.Context(), req.AccountID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.BadRequest(c, "Account not found")
		}
		return response.InternalServerError(c, "Failed to create transaction")
	}

	count, err := h.transactionRepo.CountAll(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to create transaction")
	}

	userID := middleware.CurrentUserID(c)
	transaction := &models.AccountTransaction{
		SerialNumber: strconv.FormatInt(count+1, 10),
		Date:         req.Date,
		AccountID:    req.AccountID,
		Direction:    req.Direction,
		Amount:       amount.Format(amount.Parse(req.Amount)),
		Currency:     req.Currency,
		Description:  req.Description,
		Reference:    req.Reference,
		CreatedBy:    userID,
		UpdatedBy:    userID,
	}

	if err := h.transactionRepo.Create(c.Context(), transaction); err != nil {
		return response.InternalServerError(c, "Failed to create transaction")
	}

	return response.Created(c, "Transaction created successfully", fiber.Map{
		"transaction": transaction,
	})
}

// UpdateTransaction updates a transaction. The serial number is immutable.
// @Summary Update transaction
// @Tags Accounting
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Param body body TransactionRequest true "Transaction data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /transactions/{id} [put]
func (h *AccountingHandler) UpdateTransaction(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var req TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	transaction, err := h.transactionRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Transaction not found")
		}
		return response.InternalServerError(c, "Failed to get transaction")
	}

	if req.AccountID == 0 {
		return response.BadRequest(c, "Account is required")
	}
	if req.Direction != models.DirectionDebit && req.Direction != models.DirectionCredit {
		return response.BadRequest(c, "Direction must be Debit or Credit")
	}
	if req.AccountID != transaction.AccountID {
		if _, err := h.accountRepo.GetByID(c.Context(), req.AccountID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.BadRequest(c, "Account not found")
			}
			return response.InternalServerError(c, "Failed to update transaction")
		}
	}

	transaction.Date = req.Date
	transaction.AccountID = req.AccountID
	transaction.Account = nil
	transaction.Direction = req.Direction
	transaction.Amount = amount.Format(amount.Parse(req.Amount))
	transaction.Currency = req.Currency
	transaction.Description = req.Description
	transaction.Reference = req.Reference
	transaction.UpdatedBy = middleware.CurrentUserID(c)

	if err := h.transactionRepo.Update(c.Context(), transaction); err != nil {
		return response.InternalServerError(c, "Failed to update transaction")
	}

	return response.Success(c, "Transaction updated successfully", fiber.Map{
		"transaction": transaction,
	})
}

// DeleteTransaction deletes a transaction
// @Summary Delete transaction
// @Tags Accounting
// @Produce json
// @Security BearerAuth
// @Param id path int true "Transaction ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /transactions/{id} [delete]
func (h *AccountingHandler) DeleteTransaction(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.transactionRepo.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Transaction not found")
		}
		return response.InternalServerError(c, "Failed to delete transaction")
	}

	return response.Success(c, "Transaction deleted successfully", nil)
}

// ============================================================
// Safes
// ============================================================

// SafeRequest carries the writable safe fields
type SafeRequest struct {
	Name     string `json:"name"`
	Branch   string `json:"branch"`
	Currency string `json:"currency"`
	Balance  string `json:"balance"`
}

// ListSafes lists cash safes
// @Summary List safes
// @Tags Accounting
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param search query string false "Search name or branch"
// @Success 200 {object} response.Response
// @Router /safes [get]
func (h *AccountingHandler) ListSafes(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	safes, total, err := h.safeRepo.List(c.Context(), &repositories.DateRangeFilter{
		Search: c.Query("search"),
		Offset: params.Offset,
		Limit:  params.Limit,
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to list safes")
	}

	return response.Success(c, "Safes retrieved successfully", fiber.Map{
		"safes": safes,
		"meta":  pagination.GetMeta(params, total),
	})
}

// GetSafe gets a safe by ID
// @Summary Get safe
// @Tags Accounting
// @Produce json
// @Security BearerAuth
// @Param id path int true "Safe ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /safes/{id} [get]
func (h *AccountingHandler) GetSafe(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	safe, err := h.safeRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Safe not found")
		}
		return response.InternalServerError(c, "Failed to get safe")
	}

	return response.Success(c, "Safe retrieved successfully", fiber.Map{
		"safe": safe,
	})
}

// CreateSafe creates a cash safe
// @Summary Create safe
// @Tags Accounting
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SafeRequest true "Safe data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /safes [post]
func (h *AccountingHandler) CreateSafe(c *fiber.Ctx) error {
	var req SafeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return response.BadRequest(c, "Name is required")
	}

	exists, err := h.safeRepo.ExistsByName(c.Context(), req.Name)
	if err != nil {
		return response.InternalServerError(c, "Failed to create safe")
	}
	if exists {
		return response.Conflict(c, "Safe name already exists")
	}

	userID := middleware.CurrentUserID(c)
	safe := &models.Safe{
		Name:      req.Name,
		Branch:    req.Branch,
		Currency:  req.Currency,
		Balance:   amount.Format(amount.Parse(req.Balance)),
		CreatedBy: userID,
		UpdatedBy: userID,
	}

	if err := h.safeRepo.Create(c.Context(), safe); err != nil {
		return response.InternalServerError(c, "Failed to create safe")
	}

	return response.Created(c, "Safe created successfully", fiber.Map{
		"safe": safe,
	})
}

// UpdateSafe updates a cash safe
// @Summary Update safe
// @Tags Accounting
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Safe ID"
// @Param body body SafeRequest true "Safe data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /safes/{id} [put]
func (h *AccountingHandler) UpdateSafe(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var req SafeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	safe, err := h.safeRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Safe not found")
		}
		return response.InternalServerError(c, "Failed to get safe")
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return response.BadRequest(c, "Name is required")
	}
	if req.Name != safe.Name {
		exists, err := h.safeRepo.ExistsByName(c.Context(), req.Name)
		if err != nil {
			return response.InternalServerError(c, "Failed to update safe")
		}
		if exists {
			return response.Conflict(c, "Safe name already exists")
		}
	}

	safe.Name = req.Name
	safe.Branch = req.Branch
	safe.Currency = req.Currency
	safe.Balance = amount.Format(amount.Parse(req.Balance))
	safe.UpdatedBy = middleware.CurrentUserID(c)

	if err := h.safeRepo.Update(c.Context(), safe); err != nil {
		return response.InternalServerError(c, "Failed to update safe")
	}

	return response.Success(c, "Safe updated successfully", fiber.Map{
		"safe": safe,
	})
}

// DeleteSafe deletes a cash safe
// @Summary Delete safe
// @Tags Accounting
// @Produce json
// @Security BearerAuth
// @Param id path int true "Safe ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /safes/{id} [delete]
func (h *AccountingHandler) DeleteSafe(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.safeRepo.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Safe not found")
		}
		return response.InternalServerError(c, "Failed to delete safe")
	}

	return response.Success(c, "Safe deleted successfully", nil)
}

// ============================================================
// Banks
// ============================================================

// BankRequest carries the writable bank fields
type BankRequest struct {
	Name          string `json:"name"`
	AccountNumber string `json:"account_number"`
	IBAN          string `json:"iban"`
	Currency      string `json:"currency"`
	Balance       string `json:"balance"`
}

// ListBanks lists bank accounts
// @Summary List banks
// @Tags Accounting
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param search query string false "Search name, account number or IBAN"
// @Success 200 {object} response.Response
// @Router /banks [get]
func (h *AccountingHandler) ListBanks(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	banks, total, err := h.bankRepo.List(c.Context(), &repositories.DateRangeFilter{
		Search: c.Query("search"),
		Offset: params.Offset,
		Limit:  params.Limit,
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to list banks")
	}

	return response.Success(c, "Banks retrieved successfully", fiber.Map{
		"banks": banks,
		"meta":  pagination.GetMeta(params, total),
	})
}

// GetBank gets a bank by ID
// @Summary Get bank
// @Tags Accounting
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bank ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /banks/{id} [get]
func (h *AccountingHandler) GetBank(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	bank, err := h.bankRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Bank not found")
		}
		return response.InternalServerError(c, "Failed to get bank")
	}

	return response.Success(c, "Bank retrieved successfully", fiber.Map{
		"bank": bank,
	})
}

// CreateBank creates a bank account
// @Summary Create bank
// @Tags Accounting
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body BankRequest true "Bank data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /banks [post]
func (h *AccountingHandler) CreateBank(c *fiber.Ctx) error {
	var req BankRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.AccountNumber = strings.TrimSpace(req.AccountNumber)
	if req.Name == "" || req.AccountNumber == "" {
		return response.BadRequest(c, "Name and account number are required")
	}

	exists, err := h.bankRepo.ExistsByAccountNumber(c.Context(), req.AccountNumber)
	if err != nil {
		return response.InternalServerError(c, "Failed to create bank")
	}
	if exists {
		return response.Conflict(c, "Account number already exists")
	}

	userID := middleware.CurrentUserID(c)
	bank := &models.Bank{
		Name:          req.Name,
		AccountNumber: req.AccountNumber,
		IBAN:          req.IBAN,
		Currency:      req.Currency,
		Balance:       amount.Format(amount.Parse(req.Balance)),
		CreatedBy:     userID,
		UpdatedBy:     userID,
	}

	if err := h.bankRepo.Create(c.Context(), bank); err != nil {
		return response.InternalServerError(c, "Failed to create bank")
	}

	return response.Created(c, "Bank created successfully", fiber.Map{
		"bank": bank,
	})
}

// UpdateBank updates a bank account. The account number is immutable.
// @Summary Update bank
// @Tags Accounting
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bank ID"
// @Param body body BankRequest true "Bank data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /banks/{id} [put]
func (h *AccountingHandler) UpdateBank(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	var req BankRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	bank, err := h.bankRepo.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Bank not found")
		}
		return response.InternalServerError(c, "Failed to get bank")
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return response.BadRequest(c, "Name is required")
	}

	bank.Name = req.Name
	bank.IBAN = req.IBAN
	bank.Currency = req.Currency
	bank.Balance = amount.Format(amount.Parse(req.Balance))
	bank.UpdatedBy = middleware.CurrentUserID(c)

	if err := h.bankRepo.Update(c.Context(), bank); err != nil {
		return response.InternalServerError(c, "Failed to update bank")
	}

	return response.Success(c, "Bank updated successfully", fiber.Map{
		"bank": bank,
	})
}

// DeleteBank deletes a bank account
// @Summary Delete bank
// @Tags Accounting
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bank ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /banks/{id} [delete]
func (h *AccountingHandler) DeleteBank(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.bankRepo.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Bank not found")
		}
		return response.InternalServerError(c, "Failed to delete bank")
	}

	return response.Success(c, "Bank deleted successfully", nil)
}
