// model/modules.go
package model

// Module identifiers are fixed constants shared with the dashboard
// client. They key the permission table and appear as the :moduleId
// path segment on every resource route.
const (
	ModuleCompanies       = "1f8a6f2e-3b52-4c1d-9a44-6e0d3c5b8a01"
	ModuleUsers           = "2b9c7d3f-4c63-4d2e-8b55-7f1e4d6c9b02"
	ModuleRoles           = "3cad8e40-5d74-4e3f-9c66-802f5e7dac03"
	ModulePermissions     = "4dbe9f51-6e85-4f40-ad77-91306f8ebd04"
	ModuleDepartments     = "5ecfa062-7f96-4051-be88-a241709fce05"
	ModuleTasks           = "6fd0b173-80a7-4162-cf99-b35281a0df06"
	ModuleIterations      = "70e1c284-91b8-4273-d0aa-c46392b1e007"
	ModuleTaskAssignments = "81f2d395-a2c9-4384-e1bb-d574a3c2f108"
	ModuleComments        = "9203e4a6-b3da-4495-f2cc-e685b4d30209"
	ModuleDocuments       = "a314f5b7-c4eb-45a6-03dd-f796c5e4130a"
	ModuleNotifications   = "b42506c8-d5fc-46b7-14ee-08a7d6f5240b"
	// ModuleModules guards the registry itself.
	ModuleModules = "c53617d9-e60d-47c8-25ff-19b8e7063510"
)

// Module is a stable identifier for a protected resource area.
type Module struct {
	ID   string `json:"id" gorm:"primaryKey;type:uuid"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

// Modules returns the registry rows seeded at startup.
func Modules() []Module {
	return []Module{
		{ID: ModuleCompanies, Name: "companies"},
		{ID: ModuleUsers, Name: "users"},
		{ID: ModuleRoles, Name: "roles"},
		{ID: ModulePermissions, Name: "permissions"},
		{ID: ModuleDepartments, Name: "departments"},
		{ID: ModuleTasks, Name: "tasks"},
		{ID: ModuleIterations, Name: "iterations"},
		{ID: ModuleTaskAssignments, Name: "task-assignments"},
		{ID: ModuleComments, Name: "comments"},
		{ID: ModuleDocuments, Name: "documents"},
		{ID: ModuleNotifications, Name: "notifications"},
		{ID: ModuleModules, Name: "modules"},
	}
}
