package service

import (
	"context"

	"github.com/gamevault/platform/internal/auth"
	"github.com/gamevault/platform/internal/domain"
	"github.com/gamevault/platform/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles customer registration and login.
type AuthService struct {
	pool            *pgxpool.Pool
	customers       repository.CustomerRepository
	outbox          repository.OutboxRepository
	jwtMgr          *auth.JWTManager
	startingBalance decimal.Decimal
}

// NewAuthService creates a new AuthService. startingBalance is credited to
// every new account at registration.
func NewAuthService(
	pool *pgxpool.Pool,
	customers repository.CustomerRepository,
	outbox repository.OutboxRepository,
	jwtMgr *auth.JWTManager,
	startingBalance decimal.Decimal,
) *AuthService {
	return &AuthService{
		pool:            pool,
		customers:       customers,
		outbox:          outbox,
		jwtMgr:          jwtMgr,
		startingBalance: startingBalance,
	}
}

// RegisterInput holds the registration request fields.
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is returned on successful registration or login.
type AuthResult struct {
	Token      string          `json:"token"`
	CustomerID uuid.UUID       `json:"customer_id"`
	Username   string          `json:"username"`
	Email      string          `json:"email"`
	Balance    decimal.Decimal `json:"balance"`
}

// Register creates a new customer account with the starting balance within a
// single transaction.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if err := domain.ValidateUsername(input.Username); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}
	if err := domain.ValidateEmail(input.Email); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}
	if len(input.Password) < 8 {
		return nil, domain.ErrValidation("password must be at least 8 characters")
	}

	// Check both unique identities up front for a friendly error; the unique
	// indexes still back this under concurrency.
	existing, err := s.customers.FindByEmail(ctx, s.pool, input.Email)
	if err != nil {
		return nil, domain.ErrInternal("find customer by email", err)
	}
	if existing != nil {
		return nil, domain.ErrConflict("email already registered")
	}
	existing, err = s.customers.FindByUsername(ctx, s.pool, input.Username)
	if err != nil {
		return nil, domain.ErrInternal("find customer by username", err)
	}
	if existing != nil {
		return nil, domain.ErrConflict("username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.ErrInternal("hash password", err)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	customer := &domain.Customer{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Balance:      s.startingBalance,
	}
	if err := s.customers.Create(ctx, tx, customer); err != nil {
		return nil, domain.ErrInternal("create customer", err)
	}

	if err := s.outbox.Insert(ctx, tx, domain.NewCustomerRegisteredEvent(customer)); err != nil {
		return nil, domain.ErrInternal("register outbox", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.ErrInternal("commit tx", err)
	}

	token, err := s.jwtMgr.GenerateToken(customer.ID, customer.Username, customer.Email)
	if err != nil {
		return nil, domain.ErrInternal("generate token", err)
	}

	return &AuthResult{
		Token:      token,
		CustomerID: customer.ID,
		Username:   customer.Username,
		Email:      customer.Email,
		Balance:    customer.Balance,
	}, nil
}

// LoginInput holds the login request fields.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a customer by email and password and returns a token.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	customer, err := s.customers.FindByEmail(ctx, s.pool, input.Email)
	if err != nil {
		return nil, domain.ErrInternal("find customer", err)
	}
	if customer == nil {
		return nil, domain.ErrUnauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized("invalid credentials")
	}

	token, err := s.jwtMgr.GenerateToken(customer.ID, customer.Username, customer.Email)
	if err != nil {
		return nil, domain.ErrInternal("generate token", err)
	}

	return &AuthResult{
		Token:      token,
		CustomerID: customer.ID,
		Username:   customer.Username,
		Email:      customer.Email,
		Balance:    customer.Balance,
	}, nil
}
