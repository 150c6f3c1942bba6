package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"blogging-api/auth"
	"blogging-api/models"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserAccountStore is the persistence surface for account management.
// *repositories.UserRepository implements it.
type UserAccountStore interface {
	Insert(ctx context.Context, u *models.User) (primitive.ObjectID, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserService handles registration and login, issuing one-hour bearer
// tokens whose sub claim carries the user id.
type UserService struct {
	users UserAccountStore
	jwt   *auth.JWTManager
}

func NewUserService(users UserAccountStore, jwt *auth.JWTManager) *UserService {
	return &UserService{users: users, jwt: jwt}
}

type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Signup registers a new account and returns a signed token.
func (s *UserService) Signup(ctx context.Context, in SignupInput) (string, error) {
	if in.Email == "" || in.Password == "" {
		return "", ErrInvalidCredentials
	}

	_, err := s.users.FindByEmail(ctx, in.Email)
	if err == nil {
		return "", ErrUserExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &models.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  string(hash),
	}
	id, err := s.users.Insert(ctx, user)
	if err != nil {
		return "", err
	}
	return s.jwt.Sign(id.Hex())
}

// Signin verifies the credentials and returns a signed token. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *UserService) Signin(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return s.jwt.Sign(user.ID.Hex())
}
