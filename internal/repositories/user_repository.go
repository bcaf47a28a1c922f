package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"personality_sessions_backend/internal/models"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	UpsertUser(executor SQLExecutor, user *models.User) (int64, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUsers() ([]models.User, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// joinGoals flattens the goals list into the delimited string stored in the
// goals column. An empty list is stored as NULL.
func joinGoals(goals []string) *string {
	if len(goals) == 0 {
		return nil
	}
	joined := strings.Join(goals, models.GoalsDelimiter)
	return &joined
}

// splitGoals reverses joinGoals on every read path that returns a user.
func splitGoals(goals sql.NullString) []string {
	if !goals.Valid || goals.String == "" {
		return []string{}
	}
	return strings.Split(goals.String, models.GoalsDelimiter)
}

// UpsertUser writes the user keyed by email in a single atomic statement:
// insert when the email is new, otherwise overwrite all mutable fields and
// bump updated_at. created_at of an existing row is never touched. Returns
// the row identifier in both cases.
func (r *userRepository) UpsertUser(executor SQLExecutor, user *models.User) (int64, error) {
	query := `INSERT INTO users (
	            email, name, phone, age, profession, goals, experience, additional_info,
	            payment_method, payment_amount, payment_status, payment_id, order_id,
	            signature, session_booked, session_id, created_at, updated_at
	          ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	          ON CONFLICT(email) DO UPDATE SET
	            name = excluded.name,
	            phone = excluded.phone,
	            age = excluded.age,
	            profession = excluded.profession,
	            goals = excluded.goals,
	            experience = excluded.experience,
	            additional_info = excluded.additional_info,
	            payment_method = excluded.payment_method,
	            payment_amount = excluded.payment_amount,
	            payment_status = excluded.payment_status,
	            payment_id = excluded.payment_id,
	            order_id = excluded.order_id,
	            signature = excluded.signature,
	            session_booked = excluded.session_booked,
	            session_id = excluded.session_id,
	            updated_at = excluded.updated_at
	          RETURNING id`

	currentTime := time.Now()
	user.CreatedAt = currentTime
	user.UpdatedAt = currentTime

	if user.PaymentStatus == "" {
		user.PaymentStatus = "pending"
	}

	err := executor.QueryRow(query,
		user.Email, user.Name, user.Phone, user.Age, user.Profession,
		joinGoals(user.Goals), user.Experience, user.AdditionalInfo,
		user.PaymentMethod, user.PaymentAmount, user.PaymentStatus,
		user.PaymentID, user.OrderID, user.Signature,
		user.SessionBooked, user.SessionID, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: upserting user %s: %v", ErrDuplicateKey, user.Email, err)
		}
		return 0, fmt.Errorf("%w: upserting user %s: %v", ErrDatabaseError, user.Email, err)
	}
	return user.ID, nil
}

const userColumns = `id, email, name, phone, age, profession, goals, experience, additional_info,
	payment_method, payment_amount, payment_status, payment_id, order_id, signature,
	session_booked, session_id, created_at, updated_at`

// scanUserRow scans one user row, converting NULL columns and splitting the
// stored goals string back into a list.
func scanUserRow(row scanner) (*models.User, error) {
	user := &models.User{}
	var (
		age            sql.NullInt64
		profession     sql.NullString
		goals          sql.NullString
		experience     sql.NullString
		additionalInfo sql.NullString
		paymentMethod  sql.NullString
		paymentAmount  sql.NullFloat64
		paymentStatus  sql.NullString
		paymentID      sql.NullString
		orderID        sql.NullString
		signature      sql.NullString
		sessionID      sql.NullString
	)

	err := row.Scan(
		&user.ID, &user.Email, &user.Name, &user.Phone, &age, &profession, &goals,
		&experience, &additionalInfo, &paymentMethod, &paymentAmount, &paymentStatus,
		&paymentID, &orderID, &signature, &user.SessionBooked, &sessionID,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if age.Valid {
		user.Age = &age.Int64
	}
	if profession.Valid {
		user.Profession = &profession.String
	}
	user.Goals = splitGoals(goals)
	if experience.Valid {
		user.Experience = &experience.String
	}
	if additionalInfo.Valid {
		user.AdditionalInfo = &additionalInfo.String
	}
	if paymentMethod.Valid {
		user.PaymentMethod = &paymentMethod.String
	}
	if paymentAmount.Valid {
		user.PaymentAmount = &paymentAmount.Float64
	}
	if paymentStatus.Valid {
		user.PaymentStatus = paymentStatus.String
	}
	if paymentID.Valid {
		user.PaymentID = &paymentID.String
	}
	if orderID.Valid {
		user.OrderID = &orderID.String
	}
	if signature.Valid {
		user.Signature = &signature.String
	}
	if sessionID.Valid {
		user.SessionID = &sessionID.String
	}
	return user, nil
}

// GetUserByEmail retrieves a user by their email.
func (r *userRepository) GetUserByEmail(email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`

	user, err := scanUserRow(r.db.QueryRow(query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting user by email %s: %v", ErrDatabaseError, email, err)
	}
	return user, nil
}

// GetUsers retrieves all users, newest first. No pagination; the result set
// is unbounded.
func (r *userRepository) GetUsers() ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying users: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		user, err := scanUserRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanning user: %v", ErrDatabaseError, err)
		}
		users = append(users, *user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating user rows: %v", ErrDatabaseError, err)
	}
	return users, nil
}
