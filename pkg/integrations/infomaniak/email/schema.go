package emailintegration

import (
	"net/http"

	"github.com/flowbaker/infomaniak/pkg/domain"
	"github.com/flowbaker/infomaniak/pkg/integrations/infomaniak/common"
)

const (
	EmailActionType_ListMailboxes           domain.IntegrationActionType = "list_mailboxes"
	EmailActionType_GetMailbox              domain.IntegrationActionType = "get_mailbox"
	EmailActionType_ListAliases             domain.IntegrationActionType = "list_aliases"
	EmailActionType_CreateAlias             domain.IntegrationActionType = "create_alias"
	EmailActionType_SetAliases              domain.IntegrationActionType = "set_aliases"
	EmailActionType_DeleteAlias             domain.IntegrationActionType = "delete_alias"
	EmailActionType_ListAutoReplies         domain.IntegrationActionType = "list_auto_replies"
	EmailActionType_GetAutoReply            domain.IntegrationActionType = "get_auto_reply"
	EmailActionType_CreateAutoReply         domain.IntegrationActionType = "create_auto_reply"
	EmailActionType_UpdateAutoReply         domain.IntegrationActionType = "update_auto_reply"
	EmailActionType_DeleteAutoReply         domain.IntegrationActionType = "delete_auto_reply"
	EmailActionType_GetForwarding           domain.IntegrationActionType = "get_forwarding"
	EmailActionType_CreateForwarding        domain.IntegrationActionType = "create_forwarding"
	EmailActionType_UpdateForwarding        domain.IntegrationActionType = "update_forwarding"
	EmailActionType_DeleteForwarding        domain.IntegrationActionType = "delete_forwarding"
	EmailActionType_DeleteForwardingAddress domain.IntegrationActionType = "delete_forwarding_address"
	EmailActionType_ListMailingLists        domain.IntegrationActionType = "list_mailing_lists"
	EmailActionType_GetMailingList          domain.IntegrationActionType = "get_mailing_list"
	EmailActionType_CreateMailingList       domain.IntegrationActionType = "create_mailing_list"
	EmailActionType_UpdateMailingList       domain.IntegrationActionType = "update_mailing_list"
	EmailActionType_DeleteMailingList       domain.IntegrationActionType = "delete_mailing_list"
	EmailActionType_SendMailingListEmail    domain.IntegrationActionType = "send_mailing_list_email"
	EmailActionType_ListRedirections        domain.IntegrationActionType = "list_redirections"
	EmailActionType_GetRedirection          domain.IntegrationActionType = "get_redirection"
	EmailActionType_CreateRedirection       domain.IntegrationActionType = "create_redirection"
	EmailActionType_UpdateRedirection       domain.IntegrationActionType = "update_redirection"
	EmailActionType_DeleteRedirection       domain.IntegrationActionType = "delete_redirection"
	EmailActionType_ToggleRedirection       domain.IntegrationActionType = "toggle_redirection"
	EmailActionType_ListSignatures          domain.IntegrationActionType = "list_signatures"
	EmailActionType_GetSignature            domain.IntegrationActionType = "get_signature"
	EmailActionType_CreateSignature         domain.IntegrationActionType = "create_signature"
	EmailActionType_UpdateSignature         domain.IntegrationActionType = "update_signature"
	EmailActionType_DeleteSignature         domain.IntegrationActionType = "delete_signature"
	EmailActionType_SetSignatureDefaults    domain.IntegrationActionType = "set_signature_defaults"
)

const (
	hostingPath = "/1/mail_hostings/{mail_hosting_id}"
	mailboxPath = hostingPath + "/mailboxes/{mailbox_name}"
)

var isEnabledField = common.Field{Key: "is_enabled", Kind: common.FieldKind_Boolean}

var Endpoints = []common.Endpoint{
	// Mailboxes
	{
		ActionType:  EmailActionType_ListMailboxes,
		Name:        "List Mailboxes",
		Description: "List the mailboxes of a mail hosting",
		Method:      http.MethodGet,
		Path:        hostingPath + "/mailboxes",
		Paginate:    true,
		Fields: []common.Field{
			{Key: "search", Kind: common.FieldKind_String},
			{Key: "is_locked", Description: "Only return locked or unlocked mailboxes", Kind: common.FieldKind_Boolean},
		},
	},
	{ActionType: EmailActionType_GetMailbox, Name: "Get Mailbox", Description: "Get a mailbox by name", Method: http.MethodGet, Path: mailboxPath},

	// Aliases
	{ActionType: EmailActionType_ListAliases, Name: "List Aliases", Description: "List the aliases of a mailbox", Method: http.MethodGet, Path: mailboxPath + "/aliases", Paginate: true},
	{
		ActionType:  EmailActionType_CreateAlias,
		Name:        "Create Alias",
		Description: "Add an alias to a mailbox",
		Method:      http.MethodPost,
		Path:        mailboxPath + "/aliases",
		Fields:      []common.Field{{Key: "alias", Description: "Local part of the alias address", Kind: common.FieldKind_String, Required: true}},
	},
	{
		ActionType:  EmailActionType_SetAliases,
		Name:        "Set Aliases",
		Description: "Replace every alias of a mailbox",
		Method:      http.MethodPut,
		Path:        mailboxPath + "/aliases",
		Fields:      []common.Field{{Key: "aliases", Description: "Comma-separated aliases", Kind: common.FieldKind_CSV, Required: true}},
		Ack:         "Aliases updated successfully",
	},
	{ActionType: EmailActionType_DeleteAlias, Name: "Delete Alias", Description: "Remove an alias from a mailbox", Method: http.MethodDelete, Path: mailboxPath + "/aliases/{alias}", Ack: "Alias deleted successfully"},

	// Auto replies
	{ActionType: EmailActionType_ListAutoReplies, Name: "List Auto Replies", Description: "List the auto replies of a mail hosting", Method: http.MethodGet, Path: hostingPath + "/auto_replies", Paginate: true},
	{ActionType: EmailActionType_GetAutoReply, Name: "Get Auto Reply", Description: "Get an auto reply by ID", Method: http.MethodGet, Path: hostingPath + "/auto_replies/{auto_reply_id}"},
	{
		ActionType:  EmailActionType_CreateAutoReply,
		Name:        "Create Auto Reply",
		Description: "Set up an auto reply on a mailbox",
		Method:      http.MethodPost,
		Path:        mailboxPath + "/auto_reply",
		Fields: []common.Field{
			{Key: "subject", Kind: common.FieldKind_String, Required: true},
			{Key: "message", Kind: common.FieldKind_Text, Required: true},
			{Key: "is_enabled", Kind: common.FieldKind_Boolean, Default: true},
			{Key: "start_date", Description: "ISO 8601 date the reply starts", Kind: common.FieldKind_String},
			{Key: "end_date", Description: "ISO 8601 date the reply ends", Kind: common.FieldKind_String},
		},
	},
	{
		ActionType:  EmailActionType_UpdateAutoReply,
		Name:        "Update Auto Reply",
		Description: "Update the auto reply of a mailbox",
		Method:      http.MethodPut,
		Path:        mailboxPath + "/auto_reply",
		Fields: []common.Field{
			{Key: "subject", Kind: common.FieldKind_String},
			{Key: "message", Kind: common.FieldKind_Text},
			isEnabledField,
			{Key: "start_date", Kind: common.FieldKind_String},
			{Key: "end_date", Kind: common.FieldKind_String},
		},
	},
	{ActionType: EmailActionType_DeleteAutoReply, Name: "Delete Auto Reply", Description: "Remove the auto reply of a mailbox", Method: http.MethodDelete, Path: mailboxPath + "/auto_reply", Ack: "Auto reply deleted successfully"},

	// Forwarding
	{ActionType: EmailActionType_GetForwarding, Name: "Get Forwarding", Description: "Get the forwarding settings of a mailbox", Method: http.MethodGet, Path: mailboxPath + "/forwarding", Paginate: true},
	{
		ActionType:  EmailActionType_CreateForwarding,
		Name:        "Create Forwarding",
		Description: "Forward a mailbox to another address",
		Method:      http.MethodPost,
		Path:        mailboxPath + "/forwarding",
		Fields: []common.Field{
			{Key: "forwarding_address", Kind: common.FieldKind_Email, Required: true},
			{Key: "keep_copy", Description: "Keep a copy in the mailbox", Kind: common.FieldKind_Boolean, Default: false},
			isEnabledField,
		},
	},
	{
		ActionType:  EmailActionType_UpdateForwarding,
		Name:        "Update Forwarding",
		Description: "Update the forwarding settings of a mailbox",
		Method:      http.MethodPut,
		Path:        mailboxPath + "/forwarding",
		Fields: []common.Field{
			{Key: "forwarding_addresses", Description: "Comma-separated addresses", Kind: common.FieldKind_CSV},
			{Key: "keep_copy", Kind: common.FieldKind_Boolean},
			isEnabledField,
		},
	},
	{ActionType: EmailActionType_DeleteForwarding, Name: "Delete Forwarding", Description: "Remove all forwarding from a mailbox", Method: http.MethodDelete, Path: mailboxPath + "/forwarding", Ack: "Forwarding deleted successfully"},
	{ActionType: EmailActionType_DeleteForwardingAddress, Name: "Delete Forwarding Address", Description: "Stop forwarding to one address", Method: http.MethodDelete, Path: mailboxPath + "/forwarding/{forwarding_address}", Ack: "Forwarding address deleted successfully"},

	// Mailing lists
	{ActionType: EmailActionType_ListMailingLists, Name: "List Mailing Lists", Description: "List the mailing lists of a mail hosting", Method: http.MethodGet, Path: hostingPath + "/mailing_lists", Paginate: true},
	{ActionType: EmailActionType_GetMailingList, Name: "Get Mailing List", Description: "Get a mailing list by ID", Method: http.MethodGet, Path: hostingPath + "/mailing_lists/{mailing_list_id}"},
	{
		ActionType:  EmailActionType_CreateMailingList,
		Name:        "Create Mailing List",
		Description: "Create a mailing list",
		Method:      http.MethodPost,
		Path:        hostingPath + "/mailing_lists",
		Fields: []common.Field{
			{Key: "name", Kind: common.FieldKind_String, Required: true},
			{Key: "email_address", Kind: common.FieldKind_Email, Required: true},
			{Key: "description", Kind: common.FieldKind_Text},
			{Key: "is_moderated", Kind: common.FieldKind_Boolean},
			{Key: "members", Description: "Members as a JSON array", Kind: common.FieldKind_JSON},
		},
	},
	{
		ActionType:  EmailActionType_UpdateMailingList,
		Name:        "Update Mailing List",
		Description: "Update a mailing list",
		Method:      http.MethodPut,
		Path:        hostingPath + "/mailing_lists/{mailing_list_id}",
		Fields: []common.Field{
			{Key: "name", Kind: common.FieldKind_String},
			{Key: "description", Kind: common.FieldKind_Text},
			{Key: "is_moderated", Kind: common.FieldKind_Boolean},
			{Key: "members", Description: "Members as a JSON array", Kind: common.FieldKind_JSON},
		},
	},
	{ActionType: EmailActionType_DeleteMailingList, Name: "Delete Mailing List", Description: "Delete a mailing list", Method: http.MethodDelete, Path: hostingPath + "/mailing_lists/{mailing_list_id}", Ack: "Mailing list deleted successfully"},
	{
		ActionType:  EmailActionType_SendMailingListEmail,
		Name:        "Send Mailing List Email",
		Description: "Send an email to every member of a mailing list",
		Method:      http.MethodPost,
		Path:        hostingPath + "/mailing_lists/{mailing_list_id}/send",
		Fields: []common.Field{
			{Key: "subject", Kind: common.FieldKind_String, Required: true},
			{Key: "message", Kind: common.FieldKind_Text, Required: true},
			{Key: "reply_to", Kind: common.FieldKind_Email},
		},
		Ack: "Email sent successfully",
	},

	// Redirections
	{ActionType: EmailActionType_ListRedirections, Name: "List Redirections", Description: "List the redirections of a mail hosting", Method: http.MethodGet, Path: hostingPath + "/redirections", Paginate: true},
	{ActionType: EmailActionType_GetRedirection, Name: "Get Redirection", Description: "Get a redirection by ID", Method: http.MethodGet, Path: hostingPath + "/redirections/{redirection_id}"},
	{
		ActionType:  EmailActionType_CreateRedirection,
		Name:        "Create Redirection",
		Description: "Create a redirection",
		Method:      http.MethodPost,
		Path:        hostingPath + "/redirections",
		Fields: []common.Field{
			{Key: "source", Kind: common.FieldKind_String, Required: true},
			{Key: "destination", Kind: common.FieldKind_String, Required: true},
			{Key: "redirection_type", Kind: common.FieldKind_String},
			isEnabledField,
		},
	},
	{
		ActionType:  EmailActionType_UpdateRedirection,
		Name:        "Update Redirection",
		Description: "Update a redirection",
		Method:      http.MethodPut,
		Path:        hostingPath + "/redirections/{redirection_id}",
		Fields: []common.Field{
			{Key: "source", Kind: common.FieldKind_String},
			{Key: "destination", Kind: common.FieldKind_String},
			{Key: "redirection_type", Kind: common.FieldKind_String},
			isEnabledField,
		},
	},
	{ActionType: EmailActionType_DeleteRedirection, Name: "Delete Redirection", Description: "Delete a redirection", Method: http.MethodDelete, Path: hostingPath + "/redirections/{redirection_id}", Ack: "Redirection deleted successfully"},
	{
		ActionType:  EmailActionType_ToggleRedirection,
		Name:        "Toggle Redirection",
		Description: "Enable or disable a redirection",
		Method:      http.MethodPatch,
		Path:        hostingPath + "/redirections/{redirection_id}/enable",
		Fields:      []common.Field{{Key: "is_enabled", Kind: common.FieldKind_Boolean, Required: true}},
		Ack:         "Redirection updated successfully",
	},

	// Signatures
	{ActionType: EmailActionType_ListSignatures, Name: "List Signatures", Description: "List the signatures of a mailbox", Method: http.MethodGet, Path: mailboxPath + "/signatures", Paginate: true},
	{ActionType: EmailActionType_GetSignature, Name: "Get Signature", Description: "Get a signature by ID", Method: http.MethodGet, Path: mailboxPath + "/signatures/{signature_id}"},
	{
		ActionType:  EmailActionType_CreateSignature,
		Name:        "Create Signature",
		Description: "Create a mailbox signature",
		Method:      http.MethodPost,
		Path:        mailboxPath + "/signatures",
		Fields: []common.Field{
			{Key: "name", Kind: common.FieldKind_String, Required: true},
			{Key: "content", Description: "HTML content of the signature", Kind: common.FieldKind_Text, Required: true},
			{Key: "is_default_new", Kind: common.FieldKind_Boolean},
			{Key: "is_default_reply", Kind: common.FieldKind_Boolean},
		},
	},
	{
		ActionType:  EmailActionType_UpdateSignature,
		Name:        "Update Signature",
		Description: "Update a mailbox signature",
		Method:      http.MethodPut,
		Path:        mailboxPath + "/signatures/{signature_id}",
		Fields: []common.Field{
			{Key: "name", Kind: common.FieldKind_String},
			{Key: "content", Kind: common.FieldKind_Text},
			{Key: "is_default_new", Kind: common.FieldKind_Boolean},
			{Key: "is_default_reply", Kind: common.FieldKind_Boolean},
		},
	},
	{ActionType: EmailActionType_DeleteSignature, Name: "Delete Signature", Description: "Delete a mailbox signature", Method: http.MethodDelete, Path: mailboxPath + "/signatures/{signature_id}", Ack: "Signature deleted successfully"},
	{
		ActionType:  EmailActionType_SetSignatureDefaults,
		Name:        "Set Signature Defaults",
		Description: "Choose the default signatures for new messages and replies",
		Method:      http.MethodPut,
		Path:        mailboxPath + "/signatures/defaults",
		Fields: []common.Field{
			{Key: "default_new_signature_id", Kind: common.FieldKind_ID},
			{Key: "default_reply_signature_id", Kind: common.FieldKind_ID},
		},
		Ack: "Signature defaults updated successfully",
	},
}

var EmailSchema = domain.Integration{
	ID:                   domain.IntegrationType_InfomaniakEmail,
	Name:                 "Infomaniak Mail",
	Description:          "Manage mailboxes, aliases, forwarding, auto replies, mailing lists, redirections and signatures on Infomaniak mail hostings.",
	CredentialProperties: common.CredentialProperties,
	Actions:              common.Actions(Endpoints),
	CanTestConnection:    true,
}
