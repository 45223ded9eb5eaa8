package streamingvideointegration

import (
	"net/http"

	"github.com/flowbaker/infomaniak/pkg/domain"
	"github.com/flowbaker/infomaniak/pkg/integrations/infomaniak/common"
)

const (
	StreamingVideoActionType_ListChannels             domain.IntegrationActionType = "list_channels"
	StreamingVideoActionType_GetChannel               domain.IntegrationActionType = "get_channel"
	StreamingVideoActionType_CreateChannel            domain.IntegrationActionType = "create_channel"
	StreamingVideoActionType_UpdateChannel            domain.IntegrationActionType = "update_channel"
	StreamingVideoActionType_DeleteChannel            domain.IntegrationActionType = "delete_channel"
	StreamingVideoActionType_GetChannelThumbnail      domain.IntegrationActionType = "get_channel_thumbnail"
	StreamingVideoActionType_ConfigureChannelEncoding domain.IntegrationActionType = "configure_channel_encoding"

	StreamingVideoActionType_ListEvents  domain.IntegrationActionType = "list_events"
	StreamingVideoActionType_GetEvent    domain.IntegrationActionType = "get_event"
	StreamingVideoActionType_CreateEvent domain.IntegrationActionType = "create_event"
	StreamingVideoActionType_UpdateEvent domain.IntegrationActionType = "update_event"
	StreamingVideoActionType_DeleteEvent domain.IntegrationActionType = "delete_event"

	StreamingVideoActionType_StartLive domain.IntegrationActionType = "start_live"
	StreamingVideoActionType_StopLive  domain.IntegrationActionType = "stop_live"

	StreamingVideoActionType_GetRecordingConfig    domain.IntegrationActionType = "get_recording_config"
	StreamingVideoActionType_CreateRecordingConfig domain.IntegrationActionType = "create_recording_config"
	StreamingVideoActionType_UpdateRecordingConfig domain.IntegrationActionType = "update_recording_config"
	StreamingVideoActionType_StartRecording        domain.IntegrationActionType = "start_recording"
	StreamingVideoActionType_StopRecording         domain.IntegrationActionType = "stop_recording"

	StreamingVideoActionType_GetRestrictions           domain.IntegrationActionType = "get_restrictions"
	StreamingVideoActionType_UpdateRestrictions        domain.IntegrationActionType = "update_restrictions"
	StreamingVideoActionType_UpdateRestrictionPassword domain.IntegrationActionType = "update_restriction_password"

	StreamingVideoActionType_ListSimulcasts   domain.IntegrationActionType = "list_simulcasts"
	StreamingVideoActionType_GetSimulcast     domain.IntegrationActionType = "get_simulcast"
	StreamingVideoActionType_CreateSimulcast  domain.IntegrationActionType = "create_simulcast"
	StreamingVideoActionType_UpdateSimulcast  domain.IntegrationActionType = "update_simulcast"
	StreamingVideoActionType_DeleteSimulcast  domain.IntegrationActionType = "delete_simulcast"
	StreamingVideoActionType_EnableSimulcast  domain.IntegrationActionType = "enable_simulcast"
	StreamingVideoActionType_DisableSimulcast domain.IntegrationActionType = "disable_simulcast"

	StreamingVideoActionType_ListPlayers        domain.IntegrationActionType = "list_players"
	StreamingVideoActionType_GetPlayer          domain.IntegrationActionType = "get_player"
	StreamingVideoActionType_CreatePlayer       domain.IntegrationActionType = "create_player"
	StreamingVideoActionType_UpdatePlayer       domain.IntegrationActionType = "update_player"
	StreamingVideoActionType_CopyPlayer         domain.IntegrationActionType = "copy_player"
	StreamingVideoActionType_DeletePlayer       domain.IntegrationActionType = "delete_player"
	StreamingVideoActionType_GetPlayerThumbnail domain.IntegrationActionType = "get_player_thumbnail"

	StreamingVideoActionType_ListAds     domain.IntegrationActionType = "list_ads"
	StreamingVideoActionType_GetAd       domain.IntegrationActionType = "get_ad"
	StreamingVideoActionType_CreateAd    domain.IntegrationActionType = "create_ad"
	StreamingVideoActionType_UpdateAd    domain.IntegrationActionType = "update_ad"
	StreamingVideoActionType_DuplicateAd domain.IntegrationActionType = "duplicate_ad"
	StreamingVideoActionType_DeleteAd    domain.IntegrationActionType = "delete_ad"

	StreamingVideoActionType_ListOptions      domain.IntegrationActionType = "list_options"
	StreamingVideoActionType_GetOption        domain.IntegrationActionType = "get_option"
	StreamingVideoActionType_RecommitOption   domain.IntegrationActionType = "recommit_option"
	StreamingVideoActionType_TerminateOption  domain.IntegrationActionType = "terminate_option"
	StreamingVideoActionType_GetTimeshift     domain.IntegrationActionType = "get_timeshift"
	StreamingVideoActionType_CreateTimeshift  domain.IntegrationActionType = "create_timeshift"
	StreamingVideoActionType_UpdateTimeshift  domain.IntegrationActionType = "update_timeshift"
	StreamingVideoActionType_GetWatermark     domain.IntegrationActionType = "get_watermark"
	StreamingVideoActionType_UpdateWatermark  domain.IntegrationActionType = "update_watermark"
	StreamingVideoActionType_EnableWatermark  domain.IntegrationActionType = "enable_watermark"
	StreamingVideoActionType_DisableWatermark domain.IntegrationActionType = "disable_watermark"

	StreamingVideoActionType_ListStorages  domain.IntegrationActionType = "list_storages"
	StreamingVideoActionType_GetStorage    domain.IntegrationActionType = "get_storage"
	StreamingVideoActionType_CreateStorage domain.IntegrationActionType = "create_storage"
	StreamingVideoActionType_UpdateStorage domain.IntegrationActionType = "update_storage"
	StreamingVideoActionType_DeleteStorage domain.IntegrationActionType = "delete_storage"
	StreamingVideoActionType_TestStorage   domain.IntegrationActionType = "test_storage"

	StreamingVideoActionType_GetConsumption                   domain.IntegrationActionType = "get_consumption"
	StreamingVideoActionType_GetConsumptionByChannelHistogram domain.IntegrationActionType = "get_consumption_by_channel_histogram"
	StreamingVideoActionType_GetViewers                       domain.IntegrationActionType = "get_viewers"
	StreamingVideoActionType_GetUniqueViewers                 domain.IntegrationActionType = "get_unique_viewers"
	StreamingVideoActionType_GetViewersHistogram              domain.IntegrationActionType = "get_viewers_histogram"
	StreamingVideoActionType_GetViewersByChannelHistogram     domain.IntegrationActionType = "get_viewers_by_channel_histogram"
	StreamingVideoActionType_GetViewersByChannelShare         domain.IntegrationActionType = "get_viewers_by_channel_share"
	StreamingVideoActionType_GetViewing                       domain.IntegrationActionType = "get_viewing"
	StreamingVideoActionType_GetViewingByChannelHistogram     domain.IntegrationActionType = "get_viewing_by_channel_histogram"
	StreamingVideoActionType_GetCountries                     domain.IntegrationActionType = "get_countries"
	StreamingVideoActionType_GetClusters                      domain.IntegrationActionType = "get_clusters"

	StreamingVideoActionType_GetChannelConsumption                      domain.IntegrationActionType = "get_channel_consumption"
	StreamingVideoActionType_GetChannelConsumptionByResolutionHistogram domain.IntegrationActionType = "get_channel_consumption_by_resolution_histogram"
	StreamingVideoActionType_GetChannelViewers                          domain.IntegrationActionType = "get_channel_viewers"
	StreamingVideoActionType_GetChannelUniqueViewers                    domain.IntegrationActionType = "get_channel_unique_viewers"
	StreamingVideoActionType_GetChannelViewersHistogram                 domain.IntegrationActionType = "get_channel_viewers_histogram"
	StreamingVideoActionType_GetChannelViewersByResolutionShare         domain.IntegrationActionType = "get_channel_viewers_by_resolution_share"
	StreamingVideoActionType_GetChannelViewersByResolutionHistogram     domain.IntegrationActionType = "get_channel_viewers_by_resolution_histogram"
	StreamingVideoActionType_GetChannelViewing                          domain.IntegrationActionType = "get_channel_viewing"
	StreamingVideoActionType_GetChannelViewingByResolutionHistogram     domain.IntegrationActionType = "get_channel_viewing_by_resolution_histogram"
	StreamingVideoActionType_GetChannelCountries                        domain.IntegrationActionType = "get_channel_countries"
	StreamingVideoActionType_GetChannelClusters                         domain.IntegrationActionType = "get_channel_clusters"
	StreamingVideoActionType_GetChannelBrowserShare                     domain.IntegrationActionType = "get_channel_browser_share"
	StreamingVideoActionType_GetChannelOSShare                          domain.IntegrationActionType = "get_channel_os_share"
	StreamingVideoActionType_GetChannelPlayerShare                      domain.IntegrationActionType = "get_channel_player_share"
	StreamingVideoActionType_ExportStatisticsCSV                        domain.IntegrationActionType = "export_statistics_csv"

	StreamingVideoActionType_GetChannelIntegrationCode domain.IntegrationActionType = "get_channel_integration_code"
	StreamingVideoActionType_GetPlayerEmbedCode        domain.IntegrationActionType = "get_player_embed_code"
	StreamingVideoActionType_GetPlayerEmbedURL         domain.IntegrationActionType = "get_player_embed_url"
)

const (
	accountPath   = "/1/videos/{account_id}"
	channelPath   = accountPath + "/channels/{channel_id}"
	eventPath     = channelPath + "/events/{event_id}"
	simulcastPath = channelPath + "/simulcasts/{simulcast_id}"
	playerPath    = accountPath + "/players/{player_id}"
	adPath        = accountPath + "/ads/{ad_id}"
	optionPath    = accountPath + "/options/{option_id}"
	storagePath   = accountPath + "/storage/{storage_id}"
)

var (
	descriptionField = common.Field{Key: "description", Kind: common.FieldKind_Text}
	enabledField     = common.Field{Key: "enabled", Kind: common.FieldKind_Boolean}
	slugField        = common.Field{Key: "slug", Kind: common.FieldKind_String}
	encodingField    = common.Field{Key: "encoding_profile", Kind: common.FieldKind_String}

	channelFields = []common.Field{
		{Key: "name", Kind: common.FieldKind_String},
		descriptionField,
		slugField,
		encodingField,
	}

	eventFields = []common.Field{
		{Key: "name", Kind: common.FieldKind_String},
		descriptionField,
		{Key: "start_time", Description: "ISO 8601 start of the event", Kind: common.FieldKind_String},
		{Key: "end_time", Description: "ISO 8601 end of the event", Kind: common.FieldKind_String},
		{Key: "repeat_pattern", Kind: common.FieldKind_String},
	}

	recordingFields = []common.Field{
		enabledField,
		{Key: "storage_machine_id", Kind: common.FieldKind_String},
		{Key: "retention_days", Kind: common.FieldKind_Integer},
	}

	simulcastFields = []common.Field{
		{Key: "name", Kind: common.FieldKind_String},
		{Key: "platform", Description: "Target platform such as youtube or facebook", Kind: common.FieldKind_String},
		{Key: "url", Description: "RTMP ingest URL", Kind: common.FieldKind_String},
		{Key: "stream_key", Kind: common.FieldKind_String},
		enabledField,
	}

	playerFields = []common.Field{
		{Key: "name", Kind: common.FieldKind_String},
		slugField,
		{Key: "channel_id", Kind: common.FieldKind_String},
		{Key: "theme", Kind: common.FieldKind_String},
		{Key: "autoplay", Kind: common.FieldKind_Boolean},
		{Key: "controls", Kind: common.FieldKind_Boolean},
	}

	adFields = []common.Field{
		enabledField,
		{Key: "preroll_url", Kind: common.FieldKind_String},
		{Key: "midroll_url", Kind: common.FieldKind_String},
		{Key: "postroll_url", Kind: common.FieldKind_String},
		{Key: "midroll_interval", Description: "Seconds between midroll ads", Kind: common.FieldKind_Integer},
	}

	timeshiftFields = []common.Field{
		enabledField,
		{Key: "duration_minutes", Kind: common.FieldKind_Integer},
	}

	storageFields = []common.Field{
		{Key: "name", Kind: common.FieldKind_String},
		{Key: "host", Kind: common.FieldKind_String},
		{Key: "port", Kind: common.FieldKind_Integer},
		{Key: "username", Kind: common.FieldKind_String},
		{Key: "password", Kind: common.FieldKind_String},
		{Key: "path", Kind: common.FieldKind_String},
	}

	periodFields = []common.Field{
		{Key: "from", Description: "Start of the period (ISO 8601 or timestamp)", Kind: common.FieldKind_String, Required: true},
		{Key: "to", Description: "End of the period (ISO 8601 or timestamp)", Kind: common.FieldKind_String, Required: true},
	}

	storageTypeField = common.Field{Key: "type", Description: "Storage protocol such as ftp or sftp", Kind: common.FieldKind_String, Required: true}

	perField = common.Field{Key: "per", Description: "Bucket size such as hour, day or month", Kind: common.FieldKind_String}
)

// required returns a copy of fields with the given keys made mandatory.
func required(fields []common.Field, keys ...string) []common.Field {
	out := make([]common.Field, len(fields))
	copy(out, fields)

	for i := range out {
		for _, key := range keys {
			if out[i].Key == key {
				out[i].Required = true
			}
		}
	}

	return out
}

func list(actionType domain.IntegrationActionType, name, description, path string) common.Endpoint {
	return common.Endpoint{ActionType: actionType, Name: name, Description: description, Method: http.MethodGet, Path: path, Paginate: true}
}

func get(actionType domain.IntegrationActionType, name, description, path string) common.Endpoint {
	return common.Endpoint{ActionType: actionType, Name: name, Description: description, Method: http.MethodGet, Path: path}
}

func post(actionType domain.IntegrationActionType, name, description, path, ack string) common.Endpoint {
	return common.Endpoint{ActionType: actionType, Name: name, Description: description, Method: http.MethodPost, Path: path, Ack: ack}
}

func remove(actionType domain.IntegrationActionType, name, description, path, ack string) common.Endpoint {
	return common.Endpoint{ActionType: actionType, Name: name, Description: description, Method: http.MethodDelete, Path: path, Ack: ack}
}

func write(actionType domain.IntegrationActionType, name, description, method, path string, fields []common.Field, dataKey string) common.Endpoint {
	return common.Endpoint{ActionType: actionType, Name: name, Description: description, Method: method, Path: path, Fields: fields, DataKey: dataKey}
}

// statistic is a GET over a period. Bucketed statistics also accept "per".
func statistic(actionType domain.IntegrationActionType, name, path string, bucketed bool) common.Endpoint {
	fields := periodFields
	if bucketed {
		fields = append(append([]common.Field{}, periodFields...), perField)
	}

	return common.Endpoint{
		ActionType:  actionType,
		Name:        name,
		Description: name + " over a period",
		Method:      http.MethodGet,
		Path:        path,
		Fields:      fields,
	}
}

var Endpoints = []common.Endpoint{
	// Channels
	list(StreamingVideoActionType_ListChannels, "List Channels", "List the live channels of a streaming account", accountPath+"/channels"),
	get(StreamingVideoActionType_GetChannel, "Get Channel", "Get a live channel", channelPath),
	write(StreamingVideoActionType_CreateChannel, "Create Channel", "Create a live channel", http.MethodPost, accountPath+"/channels", required(channelFields, "name"), "channel_data"),
	write(StreamingVideoActionType_UpdateChannel, "Update Channel", "Update a live channel", http.MethodPut, channelPath, channelFields, "update_data"),
	remove(StreamingVideoActionType_DeleteChannel, "Delete Channel", "Delete a live channel", channelPath, "Channel deleted successfully"),
	get(StreamingVideoActionType_GetChannelThumbnail, "Get Channel Thumbnail", "Get the thumbnail URL of a channel", channelPath+"/thumbnail"),
	write(StreamingVideoActionType_ConfigureChannelEncoding, "Configure Channel Encoding", "Change the encoding profile of a channel", http.MethodPut, channelPath+"/encoding",
		[]common.Field{{Key: "encoding_profile", Kind: common.FieldKind_String, Required: true}}, ""),

	// Events
	list(StreamingVideoActionType_ListEvents, "List Events", "List the planned events of a channel", channelPath+"/events"),
	get(StreamingVideoActionType_GetEvent, "Get Event", "Get a planned event", eventPath),
	write(StreamingVideoActionType_CreateEvent, "Create Event", "Plan a live event", http.MethodPost, channelPath+"/events", required(eventFields, "name", "start_time", "end_time"), "event_data"),
	write(StreamingVideoActionType_UpdateEvent, "Update Event", "Update a planned event", http.MethodPut, eventPath, eventFields, "update_data"),
	remove(StreamingVideoActionType_DeleteEvent, "Delete Event", "Delete a planned event", eventPath, "Event deleted successfully"),

	// Live
	post(StreamingVideoActionType_StartLive, "Start Live", "Start broadcasting a channel", channelPath+"/live/start", "Live started"),
	post(StreamingVideoActionType_StopLive, "Stop Live", "Stop broadcasting a channel", channelPath+"/live/stop", "Live stopped"),

	// Recording
	get(StreamingVideoActionType_GetRecordingConfig, "Get Recording Config", "Get the recording settings of a channel", channelPath+"/recording"),
	write(StreamingVideoActionType_CreateRecordingConfig, "Create Recording Config", "Configure recording for a channel", http.MethodPost, channelPath+"/recording", recordingFields, "recording_data"),
	write(StreamingVideoActionType_UpdateRecordingConfig, "Update Recording Config", "Update the recording settings of a channel", http.MethodPut, channelPath+"/recording", recordingFields, "update_data"),
	post(StreamingVideoActionType_StartRecording, "Start Recording", "Start recording a channel", channelPath+"/recording/start", "Recording started"),
	post(StreamingVideoActionType_StopRecording, "Stop Recording", "Stop recording a channel", channelPath+"/recording/stop", "Recording stopped"),

	// Restrictions
	get(StreamingVideoActionType_GetRestrictions, "Get Restrictions", "Get the access restrictions of a channel", channelPath+"/restrictions"),
	write(StreamingVideoActionType_UpdateRestrictions, "Update Restrictions", "Update the access restrictions of a channel", http.MethodPut, channelPath+"/restrictions", []common.Field{
		{Key: "password_enabled", Kind: common.FieldKind_Boolean},
		{Key: "geo_restriction_enabled", Kind: common.FieldKind_Boolean},
		{Key: "allowed_countries", Description: "Comma-separated ISO country codes", Kind: common.FieldKind_CSV},
		{Key: "blocked_countries", Description: "Comma-separated ISO country codes", Kind: common.FieldKind_CSV},
		{Key: "domain_restriction_enabled", Kind: common.FieldKind_Boolean},
		{Key: "allowed_domains", Description: "Comma-separated domains", Kind: common.FieldKind_CSV},
	}, "update_data"),
	{
		ActionType:  StreamingVideoActionType_UpdateRestrictionPassword,
		Name:        "Update Restriction Password",
		Description: "Set the password protecting a channel",
		Method:      http.MethodPut,
		Path:        channelPath + "/restrictions/password",
		Fields:      []common.Field{{Key: "password", Kind: common.FieldKind_String, Required: true}},
		Ack:         "Password updated successfully",
	},

	// Simulcasts
	list(StreamingVideoActionType_ListSimulcasts, "List Simulcasts", "List the simulcast targets of a channel", channelPath+"/simulcasts"),
	get(StreamingVideoActionType_GetSimulcast, "Get Simulcast", "Get a simulcast target", simulcastPath),
	write(StreamingVideoActionType_CreateSimulcast, "Create Simulcast", "Add a simulcast target", http.MethodPost, channelPath+"/simulcasts", required(simulcastFields, "name", "platform", "url"), "simulcast_data"),
	write(StreamingVideoActionType_UpdateSimulcast, "Update Simulcast", "Update a simulcast target", http.MethodPut, simulcastPath, simulcastFields, "update_data"),
	remove(StreamingVideoActionType_DeleteSimulcast, "Delete Simulcast", "Delete a simulcast target", simulcastPath, "Simulcast deleted successfully"),
	post(StreamingVideoActionType_EnableSimulcast, "Enable Simulcast", "Enable a simulcast target", simulcastPath+"/enable", "Simulcast enabled"),
	post(StreamingVideoActionType_DisableSimulcast, "Disable Simulcast", "Disable a simulcast target", simulcastPath+"/disable", "Simulcast disabled"),

	// Players
	list(StreamingVideoActionType_ListPlayers, "List Players", "List the players of a streaming account", accountPath+"/players"),
	get(StreamingVideoActionType_GetPlayer, "Get Player", "Get a player", playerPath),
	write(StreamingVideoActionType_CreatePlayer, "Create Player", "Create a player", http.MethodPost, accountPath+"/players", required(playerFields, "name"), "player_data"),
	write(StreamingVideoActionType_UpdatePlayer, "Update Player", "Update a player", http.MethodPut, playerPath, playerFields, "update_data"),
	write(StreamingVideoActionType_CopyPlayer, "Copy Player", "Copy a player", http.MethodPost, playerPath+"/copy",
		[]common.Field{{Key: "name", Description: "Name of the copy", Kind: common.FieldKind_String}}, ""),
	remove(StreamingVideoActionType_DeletePlayer, "Delete Player", "Delete a player", playerPath, "Player deleted successfully"),
	get(StreamingVideoActionType_GetPlayerThumbnail, "Get Player Thumbnail", "Get the thumbnail URL of a player", playerPath+"/thumbnail"),

	// Ads
	list(StreamingVideoActionType_ListAds, "List Ads", "List the ad configurations", accountPath+"/ads"),
	get(StreamingVideoActionType_GetAd, "Get Ad", "Get an ad configuration", adPath),
	write(StreamingVideoActionType_CreateAd, "Create Ad", "Create an ad configuration for a player", http.MethodPost, accountPath+"/ads",
		append([]common.Field{{Key: "player_id", Kind: common.FieldKind_String, Required: true}}, adFields...), "ad_data"),
	write(StreamingVideoActionType_UpdateAd, "Update Ad", "Update an ad configuration", http.MethodPut, adPath, adFields, "update_data"),
	post(StreamingVideoActionType_DuplicateAd, "Duplicate Ad", "Duplicate an ad configuration", adPath+"/duplicate", ""),
	remove(StreamingVideoActionType_DeleteAd, "Delete Ad", "Delete an ad configuration", adPath, "Ad deleted successfully"),

	// Options
	list(StreamingVideoActionType_ListOptions, "List Options", "List the options of a streaming account", accountPath+"/options"),
	get(StreamingVideoActionType_GetOption, "Get Option", "Get an option", optionPath),
	post(StreamingVideoActionType_RecommitOption, "Recommit Option", "Renew an option", optionPath+"/recommit", ""),
	post(StreamingVideoActionType_TerminateOption, "Terminate Option", "Terminate an option", optionPath+"/terminate", "Option terminated"),
	get(StreamingVideoActionType_GetTimeshift, "Get Timeshift", "Get the timeshift settings of a channel", channelPath+"/timeshift"),
	write(StreamingVideoActionType_CreateTimeshift, "Create Timeshift", "Configure timeshift for a channel", http.MethodPost, channelPath+"/timeshift", timeshiftFields, "timeshift_data"),
	write(StreamingVideoActionType_UpdateTimeshift, "Update Timeshift", "Update the timeshift settings of a channel", http.MethodPut, channelPath+"/timeshift", timeshiftFields, "update_data"),
	get(StreamingVideoActionType_GetWatermark, "Get Watermark", "Get the watermark of a channel", channelPath+"/watermark"),
	write(StreamingVideoActionType_UpdateWatermark, "Update Watermark", "Update the watermark of a channel", http.MethodPut, channelPath+"/watermark", []common.Field{
		{Key: "image_url", Kind: common.FieldKind_String},
		{Key: "position", Description: "Corner such as top-left or bottom-right", Kind: common.FieldKind_String},
		{Key: "opacity", Description: "Opacity from 0 to 100", Kind: common.FieldKind_Integer},
	}, "update_data"),
	post(StreamingVideoActionType_EnableWatermark, "Enable Watermark", "Show the watermark on a channel", channelPath+"/watermark/enable", "Watermark enabled"),
	post(StreamingVideoActionType_DisableWatermark, "Disable Watermark", "Hide the watermark on a channel", channelPath+"/watermark/disable", "Watermark disabled"),

	// Storage
	list(StreamingVideoActionType_ListStorages, "List Storages", "List the external recording storages", accountPath+"/storage"),
	get(StreamingVideoActionType_GetStorage, "Get Storage", "Get an external storage", storagePath),
	write(StreamingVideoActionType_CreateStorage, "Create Storage", "Register an external storage", http.MethodPost, accountPath+"/storage",
		append([]common.Field{storageTypeField}, required(storageFields, "name", "host")...), "storage_data"),
	write(StreamingVideoActionType_UpdateStorage, "Update Storage", "Update an external storage", http.MethodPut, storagePath, storageFields, "update_data"),
	remove(StreamingVideoActionType_DeleteStorage, "Delete Storage", "Delete an external storage", storagePath, "Storage deleted successfully"),
	post(StreamingVideoActionType_TestStorage, "Test Storage", "Check that an external storage is reachable", storagePath+"/test", "Storage test succeeded"),

	// Account statistics
	statistic(StreamingVideoActionType_GetConsumption, "Get Consumption", accountPath+"/statistics/consumption", true),
	statistic(StreamingVideoActionType_GetConsumptionByChannelHistogram, "Get Consumption By Channel Histogram", accountPath+"/statistics/consumption/by-channel/histogram", true),
	statistic(StreamingVideoActionType_GetViewers, "Get Viewers", accountPath+"/statistics/viewers", false),
	statistic(StreamingVideoActionType_GetUniqueViewers, "Get Unique Viewers", accountPath+"/statistics/viewers/unique", false),
	statistic(StreamingVideoActionType_GetViewersHistogram, "Get Viewers Histogram", accountPath+"/statistics/viewers/histogram", true),
	statistic(StreamingVideoActionType_GetViewersByChannelHistogram, "Get Viewers By Channel Histogram", accountPath+"/statistics/viewers/by-channel/histogram", true),
	statistic(StreamingVideoActionType_GetViewersByChannelShare, "Get Viewers By Channel Share", accountPath+"/statistics/viewers/by-channel/share", false),
	statistic(StreamingVideoActionType_GetViewing, "Get Viewing", accountPath+"/statistics/viewing", false),
	statistic(StreamingVideoActionType_GetViewingByChannelHistogram, "Get Viewing By Channel Histogram", accountPath+"/statistics/viewing/by-channel/histogram", true),
	statistic(StreamingVideoActionType_GetCountries, "Get Countries", accountPath+"/statistics/geolocation/countries", false),
	statistic(StreamingVideoActionType_GetClusters, "Get Clusters", accountPath+"/statistics/geolocation/clusters", false),

	// Channel statistics
	statistic(StreamingVideoActionType_GetChannelConsumption, "Get Channel Consumption", channelPath+"/statistics/consumption", true),
	statistic(StreamingVideoActionType_GetChannelConsumptionByResolutionHistogram, "Get Channel Consumption By Resolution Histogram", channelPath+"/statistics/consumption/by-resolution/histogram", true),
	statistic(StreamingVideoActionType_GetChannelViewers, "Get Channel Viewers", channelPath+"/statistics/viewers", false),
	statistic(StreamingVideoActionType_GetChannelUniqueViewers, "Get Channel Unique Viewers", channelPath+"/statistics/viewers/unique", false),
	statistic(StreamingVideoActionType_GetChannelViewersHistogram, "Get Channel Viewers Histogram", channelPath+"/statistics/viewers/histogram", true),
	statistic(StreamingVideoActionType_GetChannelViewersByResolutionShare, "Get Channel Viewers By Resolution Share", channelPath+"/statistics/viewers/by-resolution/share", false),
	statistic(StreamingVideoActionType_GetChannelViewersByResolutionHistogram, "Get Channel Viewers By Resolution Histogram", channelPath+"/statistics/viewers/by-resolution/histogram", true),
	statistic(StreamingVideoActionType_GetChannelViewing, "Get Channel Viewing", channelPath+"/statistics/viewing", false),
	statistic(StreamingVideoActionType_GetChannelViewingByResolutionHistogram, "Get Channel Viewing By Resolution Histogram", channelPath+"/statistics/viewing/by-resolution/histogram", true),
	statistic(StreamingVideoActionType_GetChannelCountries, "Get Channel Countries", channelPath+"/statistics/geolocation/countries", false),
	statistic(StreamingVideoActionType_GetChannelClusters, "Get Channel Clusters", channelPath+"/statistics/geolocation/clusters", false),
	statistic(StreamingVideoActionType_GetChannelBrowserShare, "Get Channel Browser Share", channelPath+"/statistics/browser/share", false),
	statistic(StreamingVideoActionType_GetChannelOSShare, "Get Channel OS Share", channelPath+"/statistics/os/share", false),
	statistic(StreamingVideoActionType_GetChannelPlayerShare, "Get Channel Player Share", channelPath+"/statistics/player/share", false),
	write(StreamingVideoActionType_ExportStatisticsCSV, "Export Statistics CSV", "Export statistics over a period as a CSV file", http.MethodPost, accountPath+"/statistics/export/csv",
		append(append([]common.Field{}, periodFields...),
			common.Field{Key: "channel", Description: "Only export this channel", Kind: common.FieldKind_String},
			common.Field{Key: "type", Description: "Statistic to export", Kind: common.FieldKind_String},
		), ""),

	// Integration codes
	get(StreamingVideoActionType_GetChannelIntegrationCode, "Get Channel Integration Code", "Get the HTML integration code of a channel", channelPath+"/integration/code"),
	get(StreamingVideoActionType_GetPlayerEmbedCode, "Get Player Embed Code", "Get the HTML embed code of a player", playerPath+"/embed/code"),
	get(StreamingVideoActionType_GetPlayerEmbedURL, "Get Player Embed URL", "Get the embed URL of a player", playerPath+"/embed/url"),
}

var StreamingVideoSchema = domain.Integration{
	ID:                   domain.IntegrationType_InfomaniakStreamingVideo,
	Name:                 "Infomaniak Streaming Video",
	Description:          "Run live channels on Infomaniak Streaming Video: events, simulcasts, players, restrictions and audience statistics.",
	CredentialProperties: common.CredentialProperties,
	Actions:              common.Actions(Endpoints),
	CanTestConnection:    true,
}
