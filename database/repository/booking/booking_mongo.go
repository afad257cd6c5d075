package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"calbook/database"
	"calbook/models"
)

// MongoBookingRepo implements BookingRepository using MongoDB. It satisfies
// the same contract as the in-memory store, so the coordinator and service
// work against either without change.
type MongoBookingRepo struct {
	availabilityColl *mongo.Collection
	appointmentColl  *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() *MongoBookingRepo {
	db := database.MongoClient.Database("calbook")
	return &MongoBookingRepo{
		availabilityColl: db.Collection("availability"),
		appointmentColl:  db.Collection("appointments"),
	}
}

func (repo *MongoBookingRepo) SetAvailability(ownerID string, start, end int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"owner_id": ownerID}
	update := bson.M{"$set": bson.M{"owner_id": ownerID, "start": start, "end": end}}
	opts := options.Update().SetUpsert(true)
	if _, err := repo.availabilityColl.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("error setting availability for owner %s: %w", ownerID, err)
	}
	return nil
}

func (repo *MongoBookingRepo) GetAvailability(ownerID string) (*models.AvailabilityWindow, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var window models.AvailabilityWindow
	err := repo.availabilityColl.FindOne(ctx, bson.M{"owner_id": ownerID}).Decode(&window)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching availability for owner %s: %w", ownerID, err)
	}
	return &window, nil
}

func (repo *MongoBookingRepo) IsBooked(ownerID, date string, start int) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"owner_id": ownerID, "date": date, "start": start}
	count, err := repo.appointmentColl.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("error checking slot for owner %s: %w", ownerID, err)
	}
	return count > 0, nil
}

func (repo *MongoBookingRepo) AddAppointment(ownerID string, appt *models.Appointment) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	appt.ID = uuid.New().String()
	appt.OwnerID = ownerID
	if _, err := repo.appointmentColl.InsertOne(ctx, appt); err != nil {
		return "", fmt.Errorf("error creating appointment: %w", err)
	}
	return appt.ID, nil
}

func (repo *MongoBookingRepo) ListAppointments(ownerID string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"created_at": 1})
	cursor, err := repo.appointmentColl.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing appointments for owner %s: %w", ownerID, err)
	}
	defer cursor.Close(ctx)

	var out []models.Appointment
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return out, nil
}
