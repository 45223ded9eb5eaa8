package dnsintegration

import (
	"net/http"

	"github.com/flowbaker/infomaniak/pkg/domain"
	"github.com/flowbaker/infomaniak/pkg/integrations/infomaniak/common"
)

const (
	DNSActionType_ListRecords       domain.IntegrationActionType = "list_records"
	DNSActionType_GetRecord         domain.IntegrationActionType = "get_record"
	DNSActionType_CreateRecord      domain.IntegrationActionType = "create_record"
	DNSActionType_UpdateRecord      domain.IntegrationActionType = "update_record"
	DNSActionType_DeleteRecord      domain.IntegrationActionType = "delete_record"
	DNSActionType_CheckRecord       domain.IntegrationActionType = "check_record"
	DNSActionType_GetZone           domain.IntegrationActionType = "get_zone"
	DNSActionType_CreateZone        domain.IntegrationActionType = "create_zone"
	DNSActionType_UpdateZone        domain.IntegrationActionType = "update_zone"
	DNSActionType_DeleteZone        domain.IntegrationActionType = "delete_zone"
	DNSActionType_ZoneExists        domain.IntegrationActionType = "zone_exists"
	DNSActionType_CheckDNSSEC       domain.IntegrationActionType = "check_dnssec"
	DNSActionType_EnableDNSSEC      domain.IntegrationActionType = "enable_dnssec"
	DNSActionType_DisableDNSSEC     domain.IntegrationActionType = "disable_dnssec"
	DNSActionType_UpdateNameservers domain.IntegrationActionType = "update_nameservers"
	DNSActionType_ListDomainZones   domain.IntegrationActionType = "list_domain_zones"
)

var recordFields = []common.Field{
	{Key: "type", Description: "Record type such as A, AAAA, CNAME, MX or TXT", Kind: common.FieldKind_String},
	{Key: "source", Description: "Record name relative to the zone, \".\" for the apex", Kind: common.FieldKind_String},
	{Key: "target", Description: "Record value", Kind: common.FieldKind_String},
	{Key: "ttl", Description: "Time to live in seconds", Kind: common.FieldKind_Integer},
	{Key: "priority", Description: "Priority for MX and SRV records", Kind: common.FieldKind_Integer},
	{Key: "comment", Kind: common.FieldKind_String},
}

// requiredRecordFields marks type, source and target as required for creation.
func requiredRecordFields() []common.Field {
	fields := make([]common.Field, len(recordFields))
	copy(fields, recordFields)

	for i := range fields {
		switch fields[i].Key {
		case "type", "source", "target":
			fields[i].Required = true
		}
	}

	return fields
}

var zoneFields = []common.Field{
	{Key: "contact_emails", Description: "Comma-separated contact addresses", Kind: common.FieldKind_CSV},
}

var Endpoints = []common.Endpoint{
	{
		ActionType:  DNSActionType_ListRecords,
		Name:        "List Records",
		Description: "List the records of a DNS zone",
		Method:      http.MethodGet,
		Path:        "/2/zones/{zone}/records",
		Paginate:    true,
		Fields: []common.Field{
			{Key: "type", Description: "Only return records of this type", Kind: common.FieldKind_String},
			{Key: "source", Description: "Only return records with this name", Kind: common.FieldKind_String},
		},
	},
	{ActionType: DNSActionType_GetRecord, Name: "Get Record", Description: "Get a DNS record", Method: http.MethodGet, Path: "/2/zones/{zone}/records/{record_id}"},
	{
		ActionType:  DNSActionType_CreateRecord,
		Name:        "Create Record",
		Description: "Create a record in a DNS zone",
		Method:      http.MethodPost,
		Path:        "/2/zones/{zone}/records",
		Fields:      requiredRecordFields(),
	},
	{
		ActionType:  DNSActionType_UpdateRecord,
		Name:        "Update Record",
		Description: "Update a DNS record",
		Method:      http.MethodPut,
		Path:        "/2/zones/{zone}/records/{record_id}",
		Fields:      recordFields,
	},
	{ActionType: DNSActionType_DeleteRecord, Name: "Delete Record", Description: "Delete a DNS record", Method: http.MethodDelete, Path: "/2/zones/{zone}/records/{record_id}", Ack: "Record deleted successfully"},
	{ActionType: DNSActionType_CheckRecord, Name: "Check Record", Description: "Check that a DNS record resolves as configured", Method: http.MethodGet, Path: "/2/zones/{zone}/records/{record_id}/check"},
	{ActionType: DNSActionType_GetZone, Name: "Get Zone", Description: "Get a DNS zone", Method: http.MethodGet, Path: "/2/zones/{zone}", Fields: []common.Field{{Key: "with", Description: "Related resources to include, comma-separated", Kind: common.FieldKind_CSV}}},
	{
		ActionType:  DNSActionType_CreateZone,
		Name:        "Create Zone",
		Description: "Create a DNS zone",
		Method:      http.MethodPost,
		Path:        "/2/zones/{zone}",
		Fields: append([]common.Field{
			{Key: "source", Description: "Zone to copy records from", Kind: common.FieldKind_String},
		}, zoneFields...),
	},
	{
		ActionType:  DNSActionType_UpdateZone,
		Name:        "Update Zone",
		Description: "Update a DNS zone",
		Method:      http.MethodPut,
		Path:        "/2/zones/{zone}",
		Fields: append([]common.Field{
			{Key: "dnssec_status", Name: "DNSSEC Status", Kind: common.FieldKind_Boolean},
		}, zoneFields...),
	},
	{ActionType: DNSActionType_DeleteZone, Name: "Delete Zone", Description: "Delete a DNS zone", Method: http.MethodDelete, Path: "/2/zones/{zone}", Ack: "Zone deleted successfully"},
	{ActionType: DNSActionType_ZoneExists, Name: "Zone Exists", Description: "Check whether a DNS zone exists", Method: http.MethodGet, Path: "/2/zones/{zone}/exists"},
	{ActionType: DNSActionType_CheckDNSSEC, Name: "Check DNSSEC", Description: "Check the DNSSEC configuration of a domain", Method: http.MethodGet, Path: "/2/domains/{domain}/dnssec/check"},
	{ActionType: DNSActionType_EnableDNSSEC, Name: "Enable DNSSEC", Description: "Enable DNSSEC on a domain", Method: http.MethodPost, Path: "/2/domains/{domain}/dnssec/enable", Ack: "DNSSEC enabled successfully"},
	{ActionType: DNSActionType_DisableDNSSEC, Name: "Disable DNSSEC", Description: "Disable DNSSEC on a domain", Method: http.MethodPost, Path: "/2/domains/{domain}/dnssec/disable", Ack: "DNSSEC disabled successfully"},
	{
		ActionType:  DNSActionType_UpdateNameservers,
		Name:        "Update Nameservers",
		Description: "Replace the nameservers of a domain",
		Method:      http.MethodPut,
		Path:        "/2/domains/{domain}/nameservers",
		Fields: []common.Field{
			{Key: "nameservers", Description: "Comma-separated nameserver hostnames", Kind: common.FieldKind_CSV, Required: true},
		},
	},
	{ActionType: DNSActionType_ListDomainZones, Name: "List Domain Zones", Description: "List the DNS zones of a domain", Method: http.MethodGet, Path: "/2/domains/{domain}/zones", Paginate: true},
}

var DNSSchema = domain.Integration{
	ID:                   domain.IntegrationType_InfomaniakDNS,
	Name:                 "Infomaniak DNS",
	Description:          "Manage DNS zones, records, nameservers and DNSSEC on Infomaniak.",
	CredentialProperties: common.CredentialProperties,
	Actions:              common.Actions(Endpoints),
	CanTestConnection:    true,
}
