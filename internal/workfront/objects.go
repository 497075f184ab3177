// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workfront

import (
	"fmt"
	"sort"
	"strings"
)

// ProbeObjCode and ProbeFields define the connectivity probe request.
const (
	ProbeObjCode = "project"
	ProbeFields  = "name,status"
)

// ObjectType maps a CLI object name to its Workfront object code and the
// fields requested for it.
type ObjectType struct {
	Name    string
	ObjCode string
	Fields  string
}

var objectTypes = map[string]ObjectType{
	"projects": {
		Name:    "projects",
		ObjCode: "project",
		Fields:  "name,status,objCode,plannedCompletionDate,percentComplete",
	},
	"tasks": {
		Name:    "tasks",
		ObjCode: "task",
		Fields:  "name,status,objCode,assignedToID,duration,percentComplete",
	},
	"issues": {
		Name:    "issues",
		ObjCode: "issue",
		Fields:  "name,status,objCode,priority,severity",
	},
	"customers": {
		Name:    "customers",
		ObjCode: "customer",
		Fields:  "name,objCode",
	},
	"documents": {
		Name:    "documents",
		ObjCode: "document",
		Fields:  "name,objCode,currentVersion,docObjCode",
	},
}

// LookupObjectType finds an object type by name, case-insensitively.
func LookupObjectType(name string) (ObjectType, error) {
	ot, ok := objectTypes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ObjectType{}, fmt.Errorf("invalid object type %q (want one of: %s)", name, strings.Join(ObjectTypeNames(), ", "))
	}
	return ot, nil
}

// ObjectTypeNames lists the known object names in sorted order.
func ObjectTypeNames() []string {
	names := make([]string, 0, len(objectTypes))
	for n := range objectTypes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
