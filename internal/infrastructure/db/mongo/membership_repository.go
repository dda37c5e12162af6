package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/haryawn/law-firm-api/internal/core/ports"
)

const adminCollection = "admins"

// MembershipRepository looks up admin privilege in the admins collection.
// One document per privileged subject, keyed by user_id; absence of a
// document means the subject is not an admin.
type MembershipRepository struct {
	coll *mongo.Collection
}

var _ ports.MembershipStore = (*MembershipRepository)(nil)

func NewMembershipRepository(db *mongo.Database) *MembershipRepository {
	return &MembershipRepository{coll: db.Collection(adminCollection)}
}

func (r *MembershipRepository) IsAdmin(ctx context.Context, subjectID string) (bool, error) {
	if subjectID == "" {
		return false, nil
	}
	n, err := r.coll.CountDocuments(ctx, bson.M{"user_id": subjectID})
	if err != nil {
		return false, fmt.Errorf("admin membership lookup: %w", err)
	}
	return n > 0, nil
}
