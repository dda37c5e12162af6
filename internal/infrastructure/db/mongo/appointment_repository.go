package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/haryawn/law-firm-api/internal/core/domain"
)

const appointmentCollection = "appointments"

type AppointmentRepository struct {
	coll *mongo.Collection
}

func NewAppointmentRepository(db *mongo.Database) *AppointmentRepository {
	return &AppointmentRepository{coll: db.Collection(appointmentCollection)}
}

type mongoAppointment struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	Phone        string             `bson:"phone,omitempty"`
	Date         time.Time          `bson:"date"`
	Time         string             `bson:"time"`
	PracticeArea string             `bson:"practice_area"`
	Notes        string             `bson:"notes,omitempty"`
	Status       string             `bson:"status"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

func (m mongoAppointment) toDomain() domain.Appointment {
	return domain.Appointment{
		ID:           m.ID.Hex(),
		Name:         m.Name,
		Email:        m.Email,
		Phone:        m.Phone,
		Date:         m.Date.UTC(),
		Time:         m.Time,
		PracticeArea: m.PracticeArea,
		Notes:        m.Notes,
		Status:       domain.AppointmentStatus(m.Status),
		CreatedAt:    unixToTime(m.CreatedAt),
		UpdatedAt:    unixToTime(m.UpdatedAt),
	}
}

func (r *AppointmentRepository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	doc := mongoAppointment{
		Name:         appt.Name,
		Email:        appt.Email,
		Phone:        appt.Phone,
		Date:         appt.Date,
		Time:         appt.Time,
		PracticeArea: appt.PracticeArea,
		Notes:        appt.Notes,
		Status:       string(appt.Status),
		CreatedAt:    appt.CreatedAt.Unix(),
		UpdatedAt:    appt.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert appointment: %w", err)
	}

	created := *appt
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *AppointmentRepository) List(ctx context.Context, limit int64) ([]domain.Appointment, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Appointment
	for cur.Next(ctx) {
		var m mongoAppointment
		if err := cur.Decode(&m); err != nil {
			return nil, fmt.Errorf("decode appointment: %w", err)
		}
		out = append(out, m.toDomain())
	}
	return out, cur.Err()
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAppointmentNotFound
	}

	update := bson.M{"$set": bson.M{
		"status":     string(status),
		"updated_at": time.Now().UTC().Unix(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var m mongoAppointment
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&m); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("update appointment: %w", err)
	}

	appt := m.toDomain()
	return &appt, nil
}

func (r *AppointmentRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count appointments: %w", err)
	}
	return n, nil
}

func (r *AppointmentRepository) CountByStatus(ctx context.Context, status domain.AppointmentStatus) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"status": string(status)})
	if err != nil {
		return 0, fmt.Errorf("count appointments by status: %w", err)
	}
	return n, nil
}
