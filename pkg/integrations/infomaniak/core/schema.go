package coreintegration

import (
	"net/http"

	"github.com/flowbaker/infomaniak/pkg/domain"
	"github.com/flowbaker/infomaniak/pkg/integrations/infomaniak/common"
)

const (
	CoreActionType_ListActions           domain.IntegrationActionType = "list_actions"
	CoreActionType_GetAction             domain.IntegrationActionType = "get_action"
	CoreActionType_ListCountries         domain.IntegrationActionType = "list_countries"
	CoreActionType_GetCountry            domain.IntegrationActionType = "get_country"
	CoreActionType_ListEvents            domain.IntegrationActionType = "list_events"
	CoreActionType_GetEvent              domain.IntegrationActionType = "get_event"
	CoreActionType_GetPublicCloudStatus  domain.IntegrationActionType = "get_public_cloud_status"
	CoreActionType_ListLanguages         domain.IntegrationActionType = "list_languages"
	CoreActionType_GetLanguage           domain.IntegrationActionType = "get_language"
	CoreActionType_ListProducts          domain.IntegrationActionType = "list_products"
	CoreActionType_ListTasks             domain.IntegrationActionType = "list_tasks"
	CoreActionType_GetTask               domain.IntegrationActionType = "get_task"
	CoreActionType_ListTimezones         domain.IntegrationActionType = "list_timezones"
	CoreActionType_GetTimezone           domain.IntegrationActionType = "get_timezone"
	CoreActionType_GetProfile            domain.IntegrationActionType = "get_profile"
	CoreActionType_UpdateProfile         domain.IntegrationActionType = "update_profile"
	CoreActionType_UploadAvatar          domain.IntegrationActionType = "upload_avatar"
	CoreActionType_DeleteAvatar          domain.IntegrationActionType = "delete_avatar"
	CoreActionType_ListAppPasswords      domain.IntegrationActionType = "list_app_passwords"
	CoreActionType_CreateAppPassword     domain.IntegrationActionType = "create_app_password"
	CoreActionType_GetAppPassword        domain.IntegrationActionType = "get_app_password"
	CoreActionType_ListProfileEmails     domain.IntegrationActionType = "list_profile_emails"
	CoreActionType_GetProfileEmail       domain.IntegrationActionType = "get_profile_email"
	CoreActionType_DeleteProfileEmail    domain.IntegrationActionType = "delete_profile_email"
	CoreActionType_ListProfilePhones     domain.IntegrationActionType = "list_profile_phones"
	CoreActionType_GetProfilePhone       domain.IntegrationActionType = "get_profile_phone"
	CoreActionType_DeleteProfilePhone    domain.IntegrationActionType = "delete_profile_phone"
	CoreActionType_InviteUser            domain.IntegrationActionType = "invite_user"
	CoreActionType_CancelInvitation      domain.IntegrationActionType = "cancel_invitation"
	CoreActionType_ListAccounts          domain.IntegrationActionType = "list_accounts"
	CoreActionType_GetAccount            domain.IntegrationActionType = "get_account"
	CoreActionType_ListAccountTags       domain.IntegrationActionType = "list_account_tags"
	CoreActionType_ListAccountProducts   domain.IntegrationActionType = "list_account_products"
	CoreActionType_ListAccountServices   domain.IntegrationActionType = "list_account_services"
	CoreActionType_ListBasicTeams        domain.IntegrationActionType = "list_basic_teams"
	CoreActionType_ListCurrentProducts   domain.IntegrationActionType = "list_current_account_products"
	CoreActionType_ListUserAppAccesses   domain.IntegrationActionType = "list_user_app_accesses"
	CoreActionType_ListAccountUsers      domain.IntegrationActionType = "list_account_users"
	CoreActionType_ListTeams             domain.IntegrationActionType = "list_teams"
	CoreActionType_CreateTeam            domain.IntegrationActionType = "create_team"
	CoreActionType_GetTeam               domain.IntegrationActionType = "get_team"
	CoreActionType_UpdateTeam            domain.IntegrationActionType = "update_team"
	CoreActionType_DeleteTeam            domain.IntegrationActionType = "delete_team"
	CoreActionType_ListTeamUsers         domain.IntegrationActionType = "list_team_users"
	CoreActionType_AddTeamUsers          domain.IntegrationActionType = "add_team_users"
	CoreActionType_RemoveTeamUsers       domain.IntegrationActionType = "remove_team_users"
	CoreActionType_ListKSuiteMailboxes   domain.IntegrationActionType = "list_ksuite_mailboxes"
	CoreActionType_AttachKSuiteMailbox   domain.IntegrationActionType = "attach_ksuite_mailbox"
	CoreActionType_SetPrimaryMailbox     domain.IntegrationActionType = "set_primary_ksuite_mailbox"
	CoreActionType_UpdateMailboxPassword domain.IntegrationActionType = "update_ksuite_mailbox_password"
	CoreActionType_UnlinkKSuiteMailbox   domain.IntegrationActionType = "unlink_ksuite_mailbox"
	CoreActionType_GetMyKSuite           domain.IntegrationActionType = "get_my_ksuite"
	CoreActionType_GetCurrentMyKSuite    domain.IntegrationActionType = "get_current_my_ksuite"
	CoreActionType_CancelUnsubscribe     domain.IntegrationActionType = "cancel_my_ksuite_unsubscribe"
)

var (
	searchField = common.Field{Key: "search", Description: "Filter results by a search term", Kind: common.FieldKind_String}
	withField   = common.Field{Key: "with", Description: "Related resources to include, comma-separated", Kind: common.FieldKind_CSV}

	orderFields = []common.Field{
		{Key: "order_by", Description: "Field to sort by", Kind: common.FieldKind_String},
		{Key: "order", Description: "Sort direction, asc or desc", Kind: common.FieldKind_String},
	}

	usersField = common.Field{Key: "users", Name: "User IDs", Description: "Comma-separated user IDs", Kind: common.FieldKind_IDList, Required: true}
)

var Endpoints = []common.Endpoint{
	// Reference data
	{ActionType: CoreActionType_ListActions, Name: "List Actions", Description: "List the actions that can be logged on an account", Method: http.MethodGet, Path: "/1/actions", Paginate: true},
	{ActionType: CoreActionType_GetAction, Name: "Get Action", Description: "Get an action by ID", Method: http.MethodGet, Path: "/1/actions/{action_id}"},
	{
		ActionType:  CoreActionType_ListCountries,
		Name:        "List Countries",
		Description: "List countries known to Infomaniak",
		Method:      http.MethodGet,
		Path:        "/1/countries",
		Paginate:    true,
		Fields: append([]common.Field{
			searchField,
			{Key: "only_enabled", Description: "Only return countries enabled for registration", Kind: common.FieldKind_Boolean},
			{Key: "only_enabled_exception", Description: "Country IDs to return even when disabled", Kind: common.FieldKind_IDList},
		}, orderFields...),
	},
	{ActionType: CoreActionType_GetCountry, Name: "Get Country", Description: "Get a country by ID", Method: http.MethodGet, Path: "/1/countries/{country_id}"},
	{ActionType: CoreActionType_ListEvents, Name: "List Events", Description: "List Infomaniak service events and incidents", Method: http.MethodGet, Path: "/1/events", Paginate: true, Fields: []common.Field{searchField}},
	{ActionType: CoreActionType_GetEvent, Name: "Get Event", Description: "Get a service event by ID", Method: http.MethodGet, Path: "/1/events/{event_id}"},
	{ActionType: CoreActionType_GetPublicCloudStatus, Name: "Get Public Cloud Status", Description: "Get the current status of the Public Cloud", Method: http.MethodGet, Path: "/1/public_cloud_status"},
	{ActionType: CoreActionType_ListLanguages, Name: "List Languages", Description: "List supported languages", Method: http.MethodGet, Path: "/1/languages", Paginate: true},
	{ActionType: CoreActionType_GetLanguage, Name: "Get Language", Description: "Get a language by ID", Method: http.MethodGet, Path: "/1/languages/{language_id}"},
	{ActionType: CoreActionType_ListProducts, Name: "List Products", Description: "List the products of the authenticated user", Method: http.MethodGet, Path: "/1/products", Paginate: true},
	{ActionType: CoreActionType_ListTasks, Name: "List Tasks", Description: "List asynchronous tasks", Method: http.MethodGet, Path: "/1/tasks", Paginate: true, Fields: []common.Field{searchField}},
	{ActionType: CoreActionType_GetTask, Name: "Get Task", Description: "Get an asynchronous task by ID", Method: http.MethodGet, Path: "/1/tasks/{task_id}"},
	{ActionType: CoreActionType_ListTimezones, Name: "List Timezones", Description: "List supported timezones", Method: http.MethodGet, Path: "/1/timezones", Paginate: true},
	{ActionType: CoreActionType_GetTimezone, Name: "Get Timezone", Description: "Get a timezone by ID", Method: http.MethodGet, Path: "/1/timezones/{timezone_id}"},

	// Profile
	{ActionType: CoreActionType_GetProfile, Name: "Get Profile", Description: "Get the profile of the token owner", Method: http.MethodGet, Path: "/2/profile", Fields: []common.Field{withField}},
	{
		ActionType:  CoreActionType_UpdateProfile,
		Name:        "Update Profile",
		Description: "Update the profile of the token owner",
		Method:      http.MethodPatch,
		Path:        "/2/profile",
		Fields: []common.Field{
			{Key: "email", Kind: common.FieldKind_Email},
			{Key: "firstname", Name: "First Name", Kind: common.FieldKind_String},
			{Key: "lastname", Name: "Last Name", Kind: common.FieldKind_String},
			{Key: "country_id", Kind: common.FieldKind_ID},
			{Key: "language_id", Kind: common.FieldKind_ID},
			{Key: "locale", Kind: common.FieldKind_Locale},
			{Key: "timezone", Kind: common.FieldKind_String},
			{Key: "password", Description: "New password", Kind: common.FieldKind_String},
			{Key: "current_password", Description: "Required when changing the password", Kind: common.FieldKind_String},
		},
	},
	{
		ActionType:  CoreActionType_UploadAvatar,
		Name:        "Upload Avatar",
		Description: "Upload a new avatar for the token owner",
		Method:      http.MethodPost,
		Path:        "/2/profile/avatar",
		Fields: []common.Field{
			{Key: "avatar", Description: "Base64 encoded image", Kind: common.FieldKind_Text, Required: true},
			{Key: "encoding", Kind: common.FieldKind_String, Default: "base64"},
		},
	},
	{ActionType: CoreActionType_DeleteAvatar, Name: "Delete Avatar", Description: "Remove the avatar of the token owner", Method: http.MethodDelete, Path: "/2/profile/avatar", Ack: "Avatar deleted successfully"},
	{ActionType: CoreActionType_ListAppPasswords, Name: "List App Passwords", Description: "List application passwords", Method: http.MethodGet, Path: "/2/profile/applications/passwords", Paginate: true},
	{
		ActionType:  CoreActionType_CreateAppPassword,
		Name:        "Create App Password",
		Description: "Create an application password",
		Method:      http.MethodPost,
		Path:        "/2/profile/applications/passwords",
		Fields:      []common.Field{{Key: "name", Kind: common.FieldKind_String, Required: true}},
	},
	{ActionType: CoreActionType_GetAppPassword, Name: "Get App Password", Description: "Get an application password by ID", Method: http.MethodGet, Path: "/2/profile/applications/passwords/{password_id}"},
	{ActionType: CoreActionType_ListProfileEmails, Name: "List Profile Emails", Description: "List the email addresses of the profile", Method: http.MethodGet, Path: "/2/profile/emails", Paginate: true},
	{ActionType: CoreActionType_GetProfileEmail, Name: "Get Profile Email", Description: "Get a profile email address by ID", Method: http.MethodGet, Path: "/2/profile/emails/{email_id}"},
	{ActionType: CoreActionType_DeleteProfileEmail, Name: "Delete Profile Email", Description: "Remove an email address from the profile", Method: http.MethodDelete, Path: "/2/profile/emails/{email_id}", Ack: "Email deleted successfully"},
	{ActionType: CoreActionType_ListProfilePhones, Name: "List Profile Phones", Description: "List the phone numbers of the profile", Method: http.MethodGet, Path: "/2/profile/phones", Paginate: true},
	{ActionType: CoreActionType_GetProfilePhone, Name: "Get Profile Phone", Description: "Get a profile phone number by ID", Method: http.MethodGet, Path: "/2/profile/phones/{phone_id}"},
	{ActionType: CoreActionType_DeleteProfilePhone, Name: "Delete Profile Phone", Description: "Remove a phone number from the profile", Method: http.MethodDelete, Path: "/2/profile/phones/{phone_id}", Ack: "Phone deleted successfully"},

	// User management
	{
		ActionType:  CoreActionType_InviteUser,
		Name:        "Invite User",
		Description: "Invite a user to an account",
		Method:      http.MethodPost,
		Path:        "/1/accounts/{account_id}/invitations",
		Intent:      "invite user",
		Fields: []common.Field{
			{Key: "email", Kind: common.FieldKind_Email, Required: true},
			{Key: "first_name", Kind: common.FieldKind_String, Required: true},
			{Key: "last_name", Kind: common.FieldKind_String, Required: true},
			{Key: "locale", Kind: common.FieldKind_Locale, Required: true},
			{Key: "role_type", Kind: common.FieldKind_RoleType, Required: true},
			{Key: "silent", Description: "Do not send the invitation email", Kind: common.FieldKind_Boolean},
			{Key: "strict", Kind: common.FieldKind_Boolean},
			{Key: "teams", Name: "Team IDs", Description: "Teams the user joins on acceptance", Kind: common.FieldKind_IDList},
			{Key: "notifications", Kind: common.FieldKind_JSON},
			{Key: "permissions", Kind: common.FieldKind_JSON},
		},
	},
	{ActionType: CoreActionType_CancelInvitation, Name: "Cancel Invitation", Description: "Cancel a pending invitation", Method: http.MethodDelete, Path: "/1/accounts/{account_id}/invitations/{invitation_id}", Ack: "Invitation cancelled successfully"},
	{ActionType: CoreActionType_ListAccounts, Name: "List Accounts", Description: "List the accounts the token can access", Method: http.MethodGet, Path: "/1/accounts", Paginate: true},
	{ActionType: CoreActionType_GetAccount, Name: "Get Account", Description: "Get an account by ID", Method: http.MethodGet, Path: "/1/accounts/{account_id}"},
	{ActionType: CoreActionType_ListAccountTags, Name: "List Account Tags", Description: "List the tags of an account", Method: http.MethodGet, Path: "/1/accounts/{account_id}/tags", Paginate: true},
	{ActionType: CoreActionType_ListAccountProducts, Name: "List Account Products", Description: "List the products of an account", Method: http.MethodGet, Path: "/1/accounts/{account_id}/products", Paginate: true},
	{ActionType: CoreActionType_ListAccountServices, Name: "List Account Services", Description: "List the services of an account", Method: http.MethodGet, Path: "/1/accounts/{account_id}/services", Paginate: true},
	{ActionType: CoreActionType_ListBasicTeams, Name: "List Basic Teams", Description: "List teams with minimal details", Method: http.MethodGet, Path: "/1/accounts/{account_id}/basic_teams", Paginate: true},
	{ActionType: CoreActionType_ListCurrentProducts, Name: "List Current Account Products", Description: "List the products of the current account", Method: http.MethodGet, Path: "/1/accounts/current/products", Paginate: true},
	{ActionType: CoreActionType_ListUserAppAccesses, Name: "List User App Accesses", Description: "List the applications a user can access", Method: http.MethodGet, Path: "/1/accounts/{account_id}/users/{user_id}/app_accesses", Paginate: true},
	{ActionType: CoreActionType_ListAccountUsers, Name: "List Account Users", Description: "List the users of an account", Method: http.MethodGet, Path: "/2/accounts/{account_id}/users", Paginate: true, Fields: []common.Field{searchField, withField}},
	{ActionType: CoreActionType_ListTeams, Name: "List Teams", Description: "List the teams of an account", Method: http.MethodGet, Path: "/1/accounts/{account_id}/teams", Paginate: true, Fields: []common.Field{searchField}},
	{
		ActionType:  CoreActionType_CreateTeam,
		Name:        "Create Team",
		Description: "Create a team in an account",
		Method:      http.MethodPost,
		Path:        "/1/accounts/{account_id}/teams",
		Fields: []common.Field{
			{Key: "name", Kind: common.FieldKind_String, Required: true},
			{Key: "owned_by_id", Name: "Owner ID", Kind: common.FieldKind_ID},
			{Key: "permissions", Kind: common.FieldKind_JSON},
		},
	},
	{ActionType: CoreActionType_GetTeam, Name: "Get Team", Description: "Get a team by ID", Method: http.MethodGet, Path: "/1/accounts/{account_id}/teams/{team_id}"},
	{
		ActionType:  CoreActionType_UpdateTeam,
		Name:        "Update Team",
		Description: "Update a team",
		Method:      http.MethodPatch,
		Path:        "/1/accounts/{account_id}/teams/{team_id}",
		Fields: []common.Field{
			{Key: "name", Kind: common.FieldKind_String},
			{Key: "owned_by_id", Name: "Owner ID", Kind: common.FieldKind_ID},
			{Key: "permissions", Kind: common.FieldKind_JSON},
		},
	},
	{ActionType: CoreActionType_DeleteTeam, Name: "Delete Team", Description: "Delete a team", Method: http.MethodDelete, Path: "/1/accounts/{account_id}/teams/{team_id}", Ack: "Team deleted successfully"},
	{ActionType: CoreActionType_ListTeamUsers, Name: "List Team Users", Description: "List the members of a team", Method: http.MethodGet, Path: "/1/accounts/{account_id}/teams/{team_id}/users", Paginate: true},
	{ActionType: CoreActionType_AddTeamUsers, Name: "Add Team Users", Description: "Add users to a team", Method: http.MethodPost, Path: "/1/accounts/{account_id}/teams/{team_id}/users", Fields: []common.Field{usersField}, Ack: "Users added to team successfully"},
	{ActionType: CoreActionType_RemoveTeamUsers, Name: "Remove Team Users", Description: "Remove users from a team", Method: http.MethodDelete, Path: "/1/accounts/{account_id}/teams/{team_id}/users", Fields: []common.Field{usersField}, BodyOnDelete: true, Ack: "Users removed from team successfully"},

	// kSuite
	{ActionType: CoreActionType_ListKSuiteMailboxes, Name: "List kSuite Mailboxes", Description: "List the mailboxes linked to the profile", Method: http.MethodGet, Path: "/2/profile/ksuites/mailboxes", Paginate: true},
	{
		ActionType:  CoreActionType_AttachKSuiteMailbox,
		Name:        "Attach kSuite Mailbox",
		Description: "Link an existing mailbox to the profile",
		Method:      http.MethodPost,
		Path:        "/2/profile/ksuites/mailboxes",
		Fields: []common.Field{
			{Key: "password", Kind: common.FieldKind_String, Required: true},
			{Key: "is_primary", Kind: common.FieldKind_Boolean},
		},
	},
	{ActionType: CoreActionType_SetPrimaryMailbox, Name: "Set Primary kSuite Mailbox", Description: "Make a linked mailbox the primary one", Method: http.MethodPut, Path: "/2/profile/ksuites/mailboxes/{mailbox_id}/set_primary", Ack: "Mailbox set as primary successfully"},
	{
		ActionType:  CoreActionType_UpdateMailboxPassword,
		Name:        "Update kSuite Mailbox Password",
		Description: "Update the stored password of a linked mailbox",
		Method:      http.MethodPut,
		Path:        "/2/profile/ksuites/mailboxes/{mailbox_id}/update_password",
		Fields:      []common.Field{{Key: "password", Name: "New Password", Kind: common.FieldKind_String, Required: true}},
		Ack:         "Mailbox password updated successfully",
	},
	{ActionType: CoreActionType_UnlinkKSuiteMailbox, Name: "Unlink kSuite Mailbox", Description: "Unlink a mailbox from the profile", Method: http.MethodDelete, Path: "/2/profile/ksuites/mailboxes/{mailbox_id}", Ack: "Mailbox unlinked successfully"},
	{ActionType: CoreActionType_GetMyKSuite, Name: "Get My kSuite", Description: "Get a my kSuite subscription by ID", Method: http.MethodGet, Path: "/1/my_ksuite/{my_ksuite_id}", Fields: []common.Field{withField}},
	{ActionType: CoreActionType_GetCurrentMyKSuite, Name: "Get Current My kSuite", Description: "Get the my kSuite subscription of the token owner", Method: http.MethodGet, Path: "/1/my_ksuite/current", Fields: []common.Field{withField}},
	{ActionType: CoreActionType_CancelUnsubscribe, Name: "Cancel My kSuite Unsubscribe", Description: "Cancel a pending my kSuite unsubscription", Method: http.MethodPost, Path: "/1/my_ksuite/{my_ksuite_id}/cancel_unsubscribe", Ack: "Unsubscription cancelled successfully"},
}

var CoreSchema = domain.Integration{
	ID:                   domain.IntegrationType_InfomaniakCore,
	Name:                 "Infomaniak",
	Description:          "Manage Infomaniak profiles, accounts, teams, kSuite and reference data.",
	CredentialProperties: common.CredentialProperties,
	Actions:              common.Actions(Endpoints),
	CanTestConnection:    true,
}
