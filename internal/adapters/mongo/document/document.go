// Package document holds the Mongo persistence shapes. Field names follow the
// Spanish collection schema the back office has always stored; mapping to and
// from the domain types happens here and nowhere else.
package document

import "go.mongodb.org/mongo-driver/bson/primitive"

type Document interface {
	GetID() primitive.ObjectID
}
