// Copyright 2026 The Cardwall Authors
// SPDX-License-Identifier: Apache-2.0

package trello

// kindSchemas is the registry of every kind's path prefix and field
// table. Field names follow the service's own vocabulary. Related
// kinds are named by tag, so the tables can reference each other
// freely regardless of declaration order.
var kindSchemas = map[Kind]schema{
	KindAction: {
		pathPrefix: "/actions",
		fields: map[string]resolver{
			"data":    rawField{key: "data"},
			"type":    rawField{key: "type"},
			"date":    dateField{key: "date"},
			"creator": relatedField{key: "idMemberCreator", target: KindMember},
		},
	},

	KindAttachment: {
		pathPrefix: "/attachments",
		fields: map[string]resolver{
			"bytes":    intField{key: "bytes"},
			"date":     dateField{key: "date"},
			"mimeType": rawField{key: "mimeType"},
			"name":     rawField{key: "name"},
			"url":      rawField{key: "url"},
			"isUpload": boolField{key: "isUpload"},
		},
	},

	KindBoard: {
		pathPrefix: "/boards",
		fields: map[string]resolver{
			"url":          rawField{key: "url"},
			"name":         rawField{key: "name"},
			"pinned":       rawField{key: "pinned"},
			"prefs":        rawField{key: "prefs"},
			"desc":         rawField{key: "desc"},
			"closed":       rawField{key: "closed"},
			"organization": relatedField{key: "idOrganization", target: KindOrganization},
			"actions":      collectionField{target: KindAction},
			"cards":        collectionField{target: KindCard},
			"checklists":   collectionField{target: KindChecklist},
			"lists":        collectionField{target: KindList},
			"members":      collectionField{target: KindMember},
			"labels":       collectionField{target: KindLabel},
		},
	},

	KindCard: {
		pathPrefix: "/cards",
		fields: map[string]resolver{
			"url":             rawField{key: "url"},
			"closed":          rawField{key: "closed"},
			"name":            rawField{key: "name"},
			"badges":          rawField{key: "badges"},
			"checkItemStates": rawField{key: "checkItemStates"},
			"desc":            rawField{key: "desc"},
			"idLabels":        rawField{key: "idLabels"},
			"due":             dateField{key: "due"},
			"board":           relatedField{key: "idBoard", target: KindBoard},
			"list":            relatedField{key: "idList", target: KindList},
			"checklists":      relatedListField{key: "idChecklists", target: KindChecklist},
			"members":         relatedListField{key: "idMembers", target: KindMember},
			"stickers":        collectionField{target: KindSticker},
			"attachments":     collectionField{target: KindAttachment},
			"labels":          collectionField{target: KindLabel},
		},
	},

	KindCheckItem: {
		pathPrefix: "/checkItems",
		fields: map[string]resolver{
			"name": rawField{key: "name"},
			"pos":  rawField{key: "pos"},
			"type": rawField{key: "type"},
		},
	},

	KindChecklist: {
		pathPrefix: "/checklists",
		fields: map[string]resolver{
			"name":       rawField{key: "name"},
			"board":      relatedField{key: "idBoard", target: KindBoard},
			"checkItems": collectionField{target: KindCheckItem},
			"cards":      collectionField{target: KindCard},
		},
	},

	KindLabel: {
		pathPrefix: "/labels",
		fields: map[string]resolver{
			"board": relatedField{key: "idBoard", target: KindBoard},
			"name":  rawField{key: "name"},
			"color": rawField{key: "color"},
			"uses":  intField{key: "uses"},
		},
	},

	KindList: {
		pathPrefix: "/lists",
		fields: map[string]resolver{
			"closed": rawField{key: "closed"},
			"name":   rawField{key: "name"},
			"url":    rawField{key: "url"},
			"board":  relatedField{key: "idBoard", target: KindBoard},
			"cards":  collectionField{target: KindCard},
		},
	},

	KindMember: {
		pathPrefix: "/members",
		fields: map[string]resolver{
			"url":           rawField{key: "url"},
			"fullname":      rawField{key: "fullName"},
			"username":      rawField{key: "username"},
			"actions":       collectionField{target: KindAction},
			"boards":        collectionField{target: KindBoard},
			"cards":         collectionField{target: KindCard},
			"notifications": collectionField{target: KindNotification},
			"organizations": collectionField{target: KindOrganization},
		},
	},

	KindNotification: {
		pathPrefix: "/notifications",
		fields: map[string]resolver{
			"data":    rawField{key: "data"},
			"type":    rawField{key: "type"},
			"unread":  rawField{key: "unread"},
			"date":    dateField{key: "date"},
			"creator": relatedField{key: "idMemberCreator", target: KindMember},
		},
	},

	KindOrganization: {
		pathPrefix: "/organizations",
		fields: map[string]resolver{
			"url":         rawField{key: "url"},
			"desc":        rawField{key: "desc"},
			"displayname": rawField{key: "displayName"},
			"name":        rawField{key: "name"},
			"actions":     collectionField{target: KindAction},
			"boards":      collectionField{target: KindBoard},
			"members":     collectionField{target: KindMember},
		},
	},

	KindSticker: {
		pathPrefix: "/stickers",
		fields: map[string]resolver{
			"image": rawField{key: "image"},
		},
	},
}
