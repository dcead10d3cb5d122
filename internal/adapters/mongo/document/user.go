package document

import (
	"time"

	"github.com/gameroom/backoffice/internal/core/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"nombre"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (doc UserDocument) GetID() primitive.ObjectID {
	return doc.ID
}

func (doc *UserDocument) ToDomain() *domain.User {
	return &domain.User{
		ID:           domain.ID(doc.ID.Hex()),
		Name:         doc.Name,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}

func ToUserDocument(user *domain.User) *UserDocument {
	doc := &UserDocument{
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	if user.ID != "" {
		objectID, _ := primitive.ObjectIDFromHex(string(user.ID))
		doc.ID = objectID
	}

	return doc
}
