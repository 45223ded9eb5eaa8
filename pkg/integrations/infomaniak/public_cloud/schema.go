package publiccloudintegration

import (
	"net/http"

	"github.com/flowbaker/infomaniak/pkg/domain"
	"github.com/flowbaker/infomaniak/pkg/integrations/infomaniak/common"
)

const (
	PublicCloudActionType_ListPublicClouds        domain.IntegrationActionType = "list_public_clouds"
	PublicCloudActionType_GetPublicCloud          domain.IntegrationActionType = "get_public_cloud"
	PublicCloudActionType_UpdatePublicCloud       domain.IntegrationActionType = "update_public_cloud"
	PublicCloudActionType_ListAccesses            domain.IntegrationActionType = "list_public_cloud_accesses"
	PublicCloudActionType_GetConfig               domain.IntegrationActionType = "get_public_cloud_config"
	PublicCloudActionType_ListProjects            domain.IntegrationActionType = "list_projects"
	PublicCloudActionType_GetProject              domain.IntegrationActionType = "get_project"
	PublicCloudActionType_CreateProject           domain.IntegrationActionType = "create_project"
	PublicCloudActionType_CreateProjectWithInvite domain.IntegrationActionType = "create_project_with_invite"
	PublicCloudActionType_UpdateProject           domain.IntegrationActionType = "update_project"
	PublicCloudActionType_DeleteProject           domain.IntegrationActionType = "delete_project"
	PublicCloudActionType_ListProjectUsers        domain.IntegrationActionType = "list_project_users"
	PublicCloudActionType_GetProjectUser          domain.IntegrationActionType = "get_project_user"
	PublicCloudActionType_CreateProjectUser       domain.IntegrationActionType = "create_project_user"
	PublicCloudActionType_InviteProjectUser       domain.IntegrationActionType = "invite_project_user"
	PublicCloudActionType_UpdateProjectUser       domain.IntegrationActionType = "update_project_user"
	PublicCloudActionType_UpdateProjectUserInvite domain.IntegrationActionType = "update_project_user_invite"
	PublicCloudActionType_DeleteProjectUser       domain.IntegrationActionType = "delete_project_user"
	PublicCloudActionType_GetProjectUserAuthFile  domain.IntegrationActionType = "get_project_user_auth_file"
	PublicCloudActionType_GetProjectUserOpenRC    domain.IntegrationActionType = "get_project_user_openrc"
	PublicCloudActionType_ListDatabases           domain.IntegrationActionType = "list_databases"
	PublicCloudActionType_ListAccountDatabases    domain.IntegrationActionType = "list_account_databases"
	PublicCloudActionType_GetDatabase             domain.IntegrationActionType = "get_database"
	PublicCloudActionType_CreateDatabase          domain.IntegrationActionType = "create_database"
	PublicCloudActionType_UpdateDatabase          domain.IntegrationActionType = "update_database"
	PublicCloudActionType_DeleteDatabase          domain.IntegrationActionType = "delete_database"
	PublicCloudActionType_GetDatabasePassword     domain.IntegrationActionType = "get_database_password"
	PublicCloudActionType_ListDatabaseBackups     domain.IntegrationActionType = "list_database_backups"
	PublicCloudActionType_GetDatabaseBackup       domain.IntegrationActionType = "get_database_backup"
	PublicCloudActionType_CreateDatabaseBackup    domain.IntegrationActionType = "create_database_backup"
	PublicCloudActionType_DeleteDatabaseBackup    domain.IntegrationActionType = "delete_database_backup"
	PublicCloudActionType_ListDatabaseRestores    domain.IntegrationActionType = "list_database_restores"
	PublicCloudActionType_GetDatabaseRestore      domain.IntegrationActionType = "get_database_restore"
	PublicCloudActionType_CreateDatabaseRestore   domain.IntegrationActionType = "create_database_restore"
	PublicCloudActionType_DeleteDatabaseRestore   domain.IntegrationActionType = "delete_database_restore"
	PublicCloudActionType_ListDatabasePacks       domain.IntegrationActionType = "list_database_packs"
	PublicCloudActionType_ListDatabaseRegions     domain.IntegrationActionType = "list_database_regions"
	PublicCloudActionType_ListDatabaseTypes       domain.IntegrationActionType = "list_database_types"
	PublicCloudActionType_ListKubernetes          domain.IntegrationActionType = "list_kubernetes"
	PublicCloudActionType_ListAccountKubernetes   domain.IntegrationActionType = "list_account_kubernetes"
	PublicCloudActionType_GetKubernetes           domain.IntegrationActionType = "get_kubernetes"
	PublicCloudActionType_CreateKubernetes        domain.IntegrationActionType = "create_kubernetes"
	PublicCloudActionType_UpdateKubernetes        domain.IntegrationActionType = "update_kubernetes"
	PublicCloudActionType_DeleteKubernetes        domain.IntegrationActionType = "delete_kubernetes"
	PublicCloudActionType_GetKubeconfig           domain.IntegrationActionType = "get_kubeconfig"
	PublicCloudActionType_ListInstancePools       domain.IntegrationActionType = "list_instance_pools"
	PublicCloudActionType_GetInstancePool         domain.IntegrationActionType = "get_instance_pool"
	PublicCloudActionType_CreateInstancePool      domain.IntegrationActionType = "create_instance_pool"
	PublicCloudActionType_UpdateInstancePool      domain.IntegrationActionType = "update_instance_pool"
	PublicCloudActionType_DeleteInstancePool      domain.IntegrationActionType = "delete_instance_pool"
	PublicCloudActionType_ListKubernetesZones     domain.IntegrationActionType = "list_kubernetes_availability_zones"
	PublicCloudActionType_ListKubernetesPacks     domain.IntegrationActionType = "list_kubernetes_packs"
	PublicCloudActionType_ListKubernetesRegions   domain.IntegrationActionType = "list_kubernetes_regions"
	PublicCloudActionType_ListKubernetesVersions  domain.IntegrationActionType = "list_kubernetes_versions"
	PublicCloudActionType_ListKubernetesFlavors   domain.IntegrationActionType = "list_kubernetes_flavors"
)

const (
	cloudPath      = "/1/public_clouds/{public_cloud_id}"
	projectPath    = cloudPath + "/projects/{project_id}"
	userPath       = projectPath + "/users/{user_id}"
	databasePath   = projectPath + "/databases/{database_id}"
	kubernetesPath = projectPath + "/kubernetes/{kubernetes_id}"
)

func name(required bool) common.Field {
	return common.Field{Key: "name", Kind: common.FieldKind_String, Required: required}
}

var (
	descriptionField = common.Field{Key: "description", Kind: common.FieldKind_Text}
	enabledField     = common.Field{Key: "enabled", Kind: common.FieldKind_Boolean}
	emailField       = common.Field{Key: "email", Kind: common.FieldKind_Email}
	roleField        = common.Field{Key: "role", Description: "Project role granted to the user", Kind: common.FieldKind_String}
	packField        = common.Field{Key: "pack", Kind: common.FieldKind_String}
	storageSizeField = common.Field{Key: "storage_size", Description: "Storage size in GB", Kind: common.FieldKind_Integer}

	poolSizeFields = []common.Field{
		{Key: "size", Description: "Number of nodes", Kind: common.FieldKind_Integer},
		{Key: "min_size", Kind: common.FieldKind_Integer},
		{Key: "max_size", Kind: common.FieldKind_Integer},
		{Key: "autoscaling_enabled", Kind: common.FieldKind_Boolean},
	}
)

func list(actionType domain.IntegrationActionType, name, description, path string) common.Endpoint {
	return common.Endpoint{ActionType: actionType, Name: name, Description: description, Method: http.MethodGet, Path: path, Paginate: true}
}

func get(actionType domain.IntegrationActionType, name, description, path string) common.Endpoint {
	return common.Endpoint{ActionType: actionType, Name: name, Description: description, Method: http.MethodGet, Path: path}
}

func remove(actionType domain.IntegrationActionType, name, description, path, ack string) common.Endpoint {
	return common.Endpoint{ActionType: actionType, Name: name, Description: description, Method: http.MethodDelete, Path: path, Ack: ack}
}

var Endpoints = []common.Endpoint{
	// Public clouds
	list(PublicCloudActionType_ListPublicClouds, "List Public Clouds", "List the Public Cloud products of the token owner", "/1/public_clouds"),
	get(PublicCloudActionType_GetPublicCloud, "Get Public Cloud", "Get a Public Cloud product", cloudPath),
	{
		ActionType:  PublicCloudActionType_UpdatePublicCloud,
		Name:        "Update Public Cloud",
		Description: "Rename or describe a Public Cloud product",
		Method:      http.MethodPut,
		Path:        cloudPath,
		Fields:      []common.Field{name(false), descriptionField},
		DataKey:     "update_data",
	},
	list(PublicCloudActionType_ListAccesses, "List Public Cloud Accesses", "List who can access a Public Cloud product", cloudPath+"/accesses"),
	get(PublicCloudActionType_GetConfig, "Get Public Cloud Config", "Get the configuration of a Public Cloud product", cloudPath+"/config"),

	// Projects
	list(PublicCloudActionType_ListProjects, "List Projects", "List the projects of a Public Cloud", cloudPath+"/projects"),
	get(PublicCloudActionType_GetProject, "Get Project", "Get a Public Cloud project", projectPath),
	{
		ActionType:  PublicCloudActionType_CreateProject,
		Name:        "Create Project",
		Description: "Create a Public Cloud project",
		Method:      http.MethodPost,
		Path:        cloudPath + "/projects",
		Fields: []common.Field{
			name(true),
			descriptionField,
			enabledField,
			{Key: "domain_id", Kind: common.FieldKind_String},
			{Key: "parent_id", Kind: common.FieldKind_String},
		},
		DataKey: "project_data",
	},
	{
		ActionType:  PublicCloudActionType_CreateProjectWithInvite,
		Name:        "Create Project With Invite",
		Description: "Create a Public Cloud project and invite a user to it",
		Method:      http.MethodPost,
		Path:        cloudPath + "/projects/invite",
		Fields:      []common.Field{name(true), descriptionField, emailField, roleField},
		DataKey:     "project_data",
	},
	{
		ActionType:  PublicCloudActionType_UpdateProject,
		Name:        "Update Project",
		Description: "Update a Public Cloud project",
		Method:      http.MethodPut,
		Path:        projectPath,
		Fields:      []common.Field{name(false), descriptionField, enabledField},
		DataKey:     "update_data",
	},
	remove(PublicCloudActionType_DeleteProject, "Delete Project", "Delete a Public Cloud project", projectPath, "Project deleted successfully"),

	// Project users
	list(PublicCloudActionType_ListProjectUsers, "List Project Users", "List the users of a project", projectPath+"/users"),
	get(PublicCloudActionType_GetProjectUser, "Get Project User", "Get a project user", userPath),
	{
		ActionType:  PublicCloudActionType_CreateProjectUser,
		Name:        "Create Project User",
		Description: "Create an OpenStack user in a project",
		Method:      http.MethodPost,
		Path:        projectPath + "/users",
		Fields: []common.Field{
			name(false),
			emailField,
			descriptionField,
			{Key: "password", Kind: common.FieldKind_String},
			enabledField,
			{Key: "default_project_id", Kind: common.FieldKind_String},
		},
		DataKey: "user_data",
	},
	{
		ActionType:  PublicCloudActionType_InviteProjectUser,
		Name:        "Invite Project User",
		Description: "Invite a user to a project by email",
		Method:      http.MethodPost,
		Path:        projectPath + "/users/invite",
		Fields:      []common.Field{{Key: "email", Kind: common.FieldKind_Email, Required: true}, roleField, descriptionField},
		DataKey:     "user_data",
	},
	{
		ActionType:  PublicCloudActionType_UpdateProjectUser,
		Name:        "Update Project User",
		Description: "Update a project user",
		Method:      http.MethodPut,
		Path:        userPath,
		Fields: []common.Field{
			name(false),
			emailField,
			descriptionField,
			{Key: "password", Kind: common.FieldKind_String},
			enabledField,
			{Key: "default_project_id", Kind: common.FieldKind_String},
		},
		DataKey: "update_data",
	},
	{
		ActionType:  PublicCloudActionType_UpdateProjectUserInvite,
		Name:        "Update Project User Invite",
		Description: "Update a pending project invitation",
		Method:      http.MethodPut,
		Path:        userPath + "/invite",
		Fields:      []common.Field{emailField, roleField},
		DataKey:     "update_data",
	},
	remove(PublicCloudActionType_DeleteProjectUser, "Delete Project User", "Delete a project user", userPath, "User deleted successfully"),
	get(PublicCloudActionType_GetProjectUserAuthFile, "Get Project User Auth File", "Download the clouds.yaml auth file of a user", userPath+"/auth-file"),
	get(PublicCloudActionType_GetProjectUserOpenRC, "Get Project User OpenRC", "Download the OpenRC file of a user", userPath+"/openrc"),

	// Databases
	list(PublicCloudActionType_ListDatabases, "List Databases", "List the databases of a project", projectPath+"/databases"),
	list(PublicCloudActionType_ListAccountDatabases, "List Account Databases", "List every database of an account", "/1/accounts/{account_id}/databases"),
	get(PublicCloudActionType_GetDatabase, "Get Database", "Get a database", databasePath),
	{
		ActionType:  PublicCloudActionType_CreateDatabase,
		Name:        "Create Database",
		Description: "Create a managed database",
		Method:      http.MethodPost,
		Path:        projectPath + "/databases",
		Fields: []common.Field{
			name(true),
			{Key: "type", Description: "Database engine, see List Database Types", Kind: common.FieldKind_String},
			{Key: "version", Kind: common.FieldKind_String},
			{Key: "region", Kind: common.FieldKind_String},
			packField,
			{Key: "flavor", Kind: common.FieldKind_String},
			storageSizeField,
			{Key: "password", Kind: common.FieldKind_String},
		},
		DataKey: "database_data",
	},
	{
		ActionType:  PublicCloudActionType_UpdateDatabase,
		Name:        "Update Database",
		Description: "Resize or rename a database",
		Method:      http.MethodPut,
		Path:        databasePath,
		Fields:      []common.Field{name(false), packField, storageSizeField},
		DataKey:     "update_data",
	},
	remove(PublicCloudActionType_DeleteDatabase, "Delete Database", "Delete a database", databasePath, "Database deleted successfully"),
	get(PublicCloudActionType_GetDatabasePassword, "Get Database Password", "Get the administrator password of a database", databasePath+"/password"),
	list(PublicCloudActionType_ListDatabaseBackups, "List Database Backups", "List the backups of a database", databasePath+"/backups"),
	get(PublicCloudActionType_GetDatabaseBackup, "Get Database Backup", "Get a database backup", databasePath+"/backups/{backup_id}"),
	{
		ActionType:  PublicCloudActionType_CreateDatabaseBackup,
		Name:        "Create Database Backup",
		Description: "Back up a database",
		Method:      http.MethodPost,
		Path:        databasePath + "/backups",
		Fields:      []common.Field{name(false), descriptionField},
		DataKey:     "backup_data",
	},
	remove(PublicCloudActionType_DeleteDatabaseBackup, "Delete Database Backup", "Delete a database backup", databasePath+"/backups/{backup_id}", "Backup deleted successfully"),
	list(PublicCloudActionType_ListDatabaseRestores, "List Database Restores", "List the restores of a database", databasePath+"/restores"),
	get(PublicCloudActionType_GetDatabaseRestore, "Get Database Restore", "Get a database restore", databasePath+"/restores/{restore_id}"),
	{
		ActionType:  PublicCloudActionType_CreateDatabaseRestore,
		Name:        "Create Database Restore",
		Description: "Restore a database from a backup",
		Method:      http.MethodPost,
		Path:        databasePath + "/restores",
		Fields:      []common.Field{{Key: "backup_id", Kind: common.FieldKind_String, Required: true}},
		DataKey:     "restore_data",
	},
	remove(PublicCloudActionType_DeleteDatabaseRestore, "Delete Database Restore", "Delete a database restore", databasePath+"/restores/{restore_id}", "Restore deleted successfully"),
	list(PublicCloudActionType_ListDatabasePacks, "List Database Packs", "List the available database packs", cloudPath+"/databases/packs"),
	list(PublicCloudActionType_ListDatabaseRegions, "List Database Regions", "List the regions databases can run in", cloudPath+"/databases/regions"),
	list(PublicCloudActionType_ListDatabaseTypes, "List Database Types", "List the available database engines", cloudPath+"/databases/types"),

	// Kubernetes
	list(PublicCloudActionType_ListKubernetes, "List Kubernetes Clusters", "List the Kubernetes clusters of a project", projectPath+"/kubernetes"),
	list(PublicCloudActionType_ListAccountKubernetes, "List Account Kubernetes Clusters", "List every Kubernetes cluster of an account", "/1/accounts/{account_id}/kubernetes"),
	get(PublicCloudActionType_GetKubernetes, "Get Kubernetes Cluster", "Get a Kubernetes cluster", kubernetesPath),
	{
		ActionType:  PublicCloudActionType_CreateKubernetes,
		Name:        "Create Kubernetes Cluster",
		Description: "Create a managed Kubernetes cluster",
		Method:      http.MethodPost,
		Path:        projectPath + "/kubernetes",
		Fields: []common.Field{
			name(true),
			{Key: "version", Kind: common.FieldKind_String},
			{Key: "region", Kind: common.FieldKind_String},
		},
		DataKey: "kubernetes_data",
	},
	{
		ActionType:  PublicCloudActionType_UpdateKubernetes,
		Name:        "Update Kubernetes Cluster",
		Description: "Rename or upgrade a Kubernetes cluster",
		Method:      http.MethodPut,
		Path:        kubernetesPath,
		Fields:      []common.Field{name(false), {Key: "version", Kind: common.FieldKind_String}},
		DataKey:     "update_data",
	},
	remove(PublicCloudActionType_DeleteKubernetes, "Delete Kubernetes Cluster", "Delete a Kubernetes cluster", kubernetesPath, "Kubernetes cluster deleted successfully"),
	get(PublicCloudActionType_GetKubeconfig, "Get Kubeconfig", "Download the kubeconfig of a cluster", kubernetesPath+"/kubeconfig"),
	list(PublicCloudActionType_ListInstancePools, "List Instance Pools", "List the instance pools of a cluster", kubernetesPath+"/instance-pools"),
	get(PublicCloudActionType_GetInstancePool, "Get Instance Pool", "Get an instance pool", kubernetesPath+"/instance-pools/{pool_id}"),
	{
		ActionType:  PublicCloudActionType_CreateInstancePool,
		Name:        "Create Instance Pool",
		Description: "Add an instance pool to a cluster",
		Method:      http.MethodPost,
		Path:        kubernetesPath + "/instance-pools",
		Fields: append([]common.Field{
			name(true),
			{Key: "flavor", Kind: common.FieldKind_String},
			{Key: "availability_zone", Kind: common.FieldKind_String},
		}, poolSizeFields...),
		DataKey: "pool_data",
	},
	{
		ActionType:  PublicCloudActionType_UpdateInstancePool,
		Name:        "Update Instance Pool",
		Description: "Resize an instance pool",
		Method:      http.MethodPut,
		Path:        kubernetesPath + "/instance-pools/{pool_id}",
		Fields:      append([]common.Field{name(false)}, poolSizeFields...),
		DataKey:     "update_data",
	},
	remove(PublicCloudActionType_DeleteInstancePool, "Delete Instance Pool", "Delete an instance pool", kubernetesPath+"/instance-pools/{pool_id}", "Instance pool deleted successfully"),
	{
		ActionType:  PublicCloudActionType_ListKubernetesZones,
		Name:        "List Kubernetes Availability Zones",
		Description: "List the availability zones for Kubernetes",
		Method:      http.MethodGet,
		Path:        cloudPath + "/kubernetes/availability-zones",
		Paginate:    true,
		Fields:      []common.Field{{Key: "region", Description: "Only return zones in this region", Kind: common.FieldKind_String}},
	},
	list(PublicCloudActionType_ListKubernetesPacks, "List Kubernetes Packs", "List the available Kubernetes packs", cloudPath+"/kubernetes/packs"),
	list(PublicCloudActionType_ListKubernetesRegions, "List Kubernetes Regions", "List the regions Kubernetes can run in", cloudPath+"/kubernetes/regions"),
	list(PublicCloudActionType_ListKubernetesVersions, "List Kubernetes Versions", "List the supported Kubernetes versions", cloudPath+"/kubernetes/versions"),
	list(PublicCloudActionType_ListKubernetesFlavors, "List Kubernetes Flavors", "List the instance flavors for node pools", cloudPath+"/kubernetes/flavors"),
}

var PublicCloudSchema = domain.Integration{
	ID:                   domain.IntegrationType_InfomaniakPublicCloud,
	Name:                 "Infomaniak Public Cloud",
	Description:          "Manage Public Cloud projects, users, managed databases and Kubernetes clusters on Infomaniak.",
	CredentialProperties: common.CredentialProperties,
	Actions:              common.Actions(Endpoints),
	CanTestConnection:    true,
}
