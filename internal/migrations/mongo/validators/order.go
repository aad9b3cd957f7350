package validators

import "go.mongodb.org/mongo-driver/bson"

var OrderValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"seat",
			"salt",
			"drink",
			"status",
			"source",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"seat": bson.M{
				"bsonType": "int",
				"minimum":  1,
			},

			"salt": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 50,
			},

			"drink": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 50,
			},

			"status": bson.M{
				"bsonType": "string",
				"enum": []string{
					"pending",
					"served",
				},
			},

			"source": bson.M{
				"bsonType": "string",
				"enum": []string{
					"seat",
					"staff",
				},
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}

var OrderLogValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"order_id",
			"seat",
			"action",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"order_id": bson.M{
				"bsonType": "string",
			},

			"seat": bson.M{
				"bsonType": "int",
				"minimum":  1,
			},

			"salt": bson.M{
				"bsonType": "string",
			},

			"drink": bson.M{
				"bsonType": "string",
			},

			"action": bson.M{
				"bsonType": "string",
				"enum": []string{
					"placed",
					"deleted",
				},
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
