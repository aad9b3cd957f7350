package validators

import "go.mongodb.org/mongo-driver/bson"

var ReservationValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"name",
			"start_time",
			"duration_min",
			"party_size",
			"assigned_seats",
			"start_min",
			"end_min",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 100,
			},

			"start_time": bson.M{
				"bsonType": "string",
				"pattern":  "^([01][0-9]|2[0-3]):[0-5][0-9]$",
			},

			"duration_min": bson.M{
				"bsonType": "int",
				"minimum":  1,
				"maximum":  1440,
			},

			"party_size": bson.M{
				"bsonType": "int",
				"minimum":  1,
				"maximum":  100,
			},

			"payment_method": bson.M{
				"bsonType": "string",
				"enum": []string{
					"cash",
					"card",
					"transfer",
				},
			},

			"memo": bson.M{
				"bsonType":  "string",
				"maxLength": 500,
			},

			// Comma-joined seat numbers, e.g. "3,4".
			"assigned_seats": bson.M{
				"bsonType": "string",
				"pattern":  "^[0-9]+(,[0-9]+)*$",
			},

			"start_min": bson.M{
				"bsonType": "int",
				"minimum":  0,
				"maximum":  1440,
			},

			"end_min": bson.M{
				"bsonType": "int",
				"minimum":  0,
				"maximum":  1440,
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
