// Package descriptor - Resource variant tables
// Each deployable service class maps, per provider, to an economical
// and a premium resource variant with tier-driven capacity parameters.
// Tables are read-only and shared across concurrent runs.
package descriptor

import "cloudcost/core/types"

// resourceSpec is one concrete resource variant
type resourceSpec struct {
	resourceType string
	args         func(tier types.SizingTier) map[string]interface{}
}

// variantSet holds the two variants a cost profile selects between
type variantSet struct {
	economical resourceSpec
	premium    resourceSpec
}

// forProfile selects the variant for a cost profile
func (v variantSet) forProfile(profile types.CostProfile) resourceSpec {
	if profile == types.ProfileHighPerformance {
		return v.premium
	}
	return v.economical
}

func tierStr(tier types.SizingTier, small, medium, large string) string {
	switch tier {
	case types.TierSmall:
		return small
	case types.TierLarge:
		return large
	default:
		return medium
	}
}

func tierInt(tier types.SizingTier, small, medium, large int) int {
	switch tier {
	case types.TierSmall:
		return small
	case types.TierLarge:
		return large
	default:
		return medium
	}
}

var awsVariants = map[types.ServiceClass]variantSet{
	"compute_container": {
		economical: resourceSpec{"aws_ecs_service", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"launch_type": "FARGATE", "desired_count": tierInt(t, 1, 2, 4)}
		}},
		premium: resourceSpec{"aws_ecs_service", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"launch_type": "FARGATE", "desired_count": tierInt(t, 2, 4, 8)}
		}},
	},
	"compute_vm": {
		economical: resourceSpec{"aws_instance", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"instance_type": tierStr(t, "t3.small", "t3.medium", "m5.large")}
		}},
		premium: resourceSpec{"aws_instance", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"instance_type": tierStr(t, "m5.large", "m5.xlarge", "m5.2xlarge")}
		}},
	},
	"serverless_function": {
		economical: resourceSpec{"aws_lambda_function", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"memory_size": tierInt(t, 256, 512, 1024), "runtime": "nodejs20.x"}
		}},
		premium: resourceSpec{"aws_lambda_function", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"memory_size": tierInt(t, 1024, 2048, 3008), "runtime": "nodejs20.x"}
		}},
	},
	"relational_database": {
		economical: resourceSpec{"aws_db_instance", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"instance_class": tierStr(t, "db.t3.micro", "db.t3.medium", "db.m5.large"), "engine": "postgres", "allocated_storage": tierInt(t, 20, 50, 100)}
		}},
		premium: resourceSpec{"aws_db_instance", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"instance_class": tierStr(t, "db.m5.large", "db.m5.xlarge", "db.m5.2xlarge"), "engine": "postgres", "allocated_storage": tierInt(t, 100, 200, 500), "multi_az": true}
		}},
	},
	"nosql_database": {
		economical: resourceSpec{"aws_dynamodb_table", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"billing_mode": "PAY_PER_REQUEST"}
		}},
		premium: resourceSpec{"aws_dynamodb_table", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"billing_mode": "PROVISIONED", "read_capacity": tierInt(t, 25, 100, 500), "write_capacity": tierInt(t, 25, 100, 500)}
		}},
	},
	"cache": {
		economical: resourceSpec{"aws_elasticache_cluster", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"node_type": tierStr(t, "cache.t3.micro", "cache.t3.small", "cache.t3.medium"), "num_cache_nodes": 1, "engine": "redis"}
		}},
		premium: resourceSpec{"aws_elasticache_cluster", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"node_type": tierStr(t, "cache.m5.large", "cache.m5.xlarge", "cache.m5.2xlarge"), "num_cache_nodes": tierInt(t, 2, 2, 3), "engine": "redis"}
		}},
	},
	"object_storage": {
		economical: resourceSpec{"aws_s3_bucket", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{}
		}},
		premium: resourceSpec{"aws_s3_bucket", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"versioning_enabled": true}
		}},
	},
	"cdn": {
		economical: resourceSpec{"aws_cloudfront_distribution", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"price_class": "PriceClass_100"}
		}},
		premium: resourceSpec{"aws_cloudfront_distribution", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"price_class": "PriceClass_All"}
		}},
	},
	"dns": {
		economical: resourceSpec{"aws_route53_zone", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{}
		}},
		premium: resourceSpec{"aws_route53_zone", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{}
		}},
	},
	"load_balancer": {
		economical: resourceSpec{"aws_lb", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"load_balancer_type": "application"}
		}},
		premium: resourceSpec{"aws_lb", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"load_balancer_type": "network"}
		}},
	},
	"api_gateway": {
		economical: resourceSpec{"aws_apigatewayv2_api", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"protocol_type": "HTTP"}
		}},
		premium: resourceSpec{"aws_api_gateway_rest_api", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{}
		}},
	},
	"message_queue": {
		economical: resourceSpec{"aws_sqs_queue", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{}
		}},
		premium: resourceSpec{"aws_sqs_queue", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"fifo_queue": true}
		}},
	},
	"search_engine": {
		economical: resourceSpec{"aws_opensearch_domain", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"instance_type": "t3.small.search", "instance_count": tierInt(t, 1, 2, 3)}
		}},
		premium: resourceSpec{"aws_opensearch_domain", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"instance_type": tierStr(t, "r6g.large.search", "r6g.xlarge.search", "r6g.2xlarge.search"), "instance_count": tierInt(t, 2, 3, 5)}
		}},
	},
	"monitoring": {
		economical: resourceSpec{"aws_cloudwatch_dashboard", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{}
		}},
		premium: resourceSpec{"aws_cloudwatch_dashboard", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"detailed_monitoring": true}
		}},
	},
}

var azureVariants = map[types.ServiceClass]variantSet{
	"compute_container": {
		economical: resourceSpec{"azurerm_container_group", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"cpu": tierInt(t, 1, 2, 4), "memory": tierInt(t, 1, 4, 8)}
		}},
		premium: resourceSpec{"azurerm_container_group", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"cpu": tierInt(t, 2, 4, 8), "memory": tierInt(t, 4, 8, 16)}
		}},
	},
	"compute_vm": {
		economical: resourceSpec{"azurerm_linux_virtual_machine", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"size": tierStr(t, "Standard_B2s", "Standard_D2s_v3", "Standard_D4s_v3")}
		}},
		premium: resourceSpec{"azurerm_linux_virtual_machine", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"size": tierStr(t, "Standard_D4s_v3", "Standard_D8s_v3", "Standard_D16s_v3")}
		}},
	},
	"serverless_function": {
		economical: resourceSpec{"azurerm_linux_function_app", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"sku_name": "Y1"}
		}},
		premium: resourceSpec{"azurerm_linux_function_app", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"sku_name": tierStr(t, "EP1", "EP2", "EP3")}
		}},
	},
	"relational_database": {
		economical: resourceSpec{"azurerm_postgresql_flexible_server", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"sku_name": tierStr(t, "B_Standard_B1ms", "GP_Standard_D2s_v3", "GP_Standard_D4s_v3"), "storage_mb": tierInt(t, 32768, 65536, 131072)}
		}},
		premium: resourceSpec{"azurerm_postgresql_flexible_server", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"sku_name": tierStr(t, "GP_Standard_D4s_v3", "MO_Standard_E4s_v3", "MO_Standard_E8s_v3"), "storage_mb": tierInt(t, 131072, 262144, 524288)}
		}},
	},
	"nosql_database": {
		economical: resourceSpec{"azurerm_cosmosdb_account", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"offer_type": "Standard", "capacity_mode": "serverless"}
		}},
		premium: resourceSpec{"azurerm_cosmosdb_account", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"offer_type": "Standard", "throughput": tierInt(t, 1000, 4000, 10000)}
		}},
	},
	"cache": {
		economical: resourceSpec{"azurerm_redis_cache", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"family": "C", "sku_name": "Basic", "capacity": tierInt(t, 0, 1, 2)}
		}},
		premium: resourceSpec{"azurerm_redis_cache", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"family": "P", "sku_name": "Premium", "capacity": tierInt(t, 1, 2, 3)}
		}},
	},
	"object_storage": {
		economical: resourceSpec{"azurerm_storage_account", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"account_tier": "Standard", "account_replication_type": "LRS"}
		}},
		premium: resourceSpec{"azurerm_storage_account", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"account_tier": "Standard", "account_replication_type": "GRS"}
		}},
	},
	"cdn": {
		economical: resourceSpec{"azurerm_cdn_profile", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"sku": "Standard_Microsoft"}
		}},
		premium: resourceSpec{"azurerm_cdn_profile", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"sku": "Premium_Verizon"}
		}},
	},
	"dns": {
		economical: resourceSpec{"azurerm_dns_zone", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{}
		}},
		premium: resourceSpec{"azurerm_dns_zone", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{}
		}},
	},
	"load_balancer": {
		economical: resourceSpec{"azurerm_lb", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"sku": "Basic"}
		}},
		premium: resourceSpec{"azurerm_lb", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"sku": "Standard"}
		}},
	},
	"api_gateway": {
		economical: resourceSpec{"azurerm_api_management", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"sku_name": "Consumption_0"}
		}},
		premium: resourceSpec{"azurerm_api_management", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"sku_name": tierStr(t, "Premium_1", "Premium_1", "Premium_2")}
		}},
	},
	"message_queue": {
		economical: resourceSpec{"azurerm_servicebus_namespace", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"sku": "Basic"}
		}},
		premium: resourceSpec{"azurerm_servicebus_namespace", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"sku": "Premium", "capacity": tierInt(t, 1, 2, 4)}
		}},
	},
	"search_engine": {
		economical: resourceSpec{"azurerm_search_service", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"sku": "basic"}
		}},
		premium: resourceSpec{"azurerm_search_service", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"sku": tierStr(t, "standard", "standard2", "standard3")}
		}},
	},
	"monitoring": {
		economical: resourceSpec{"azurerm_application_insights", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"application_type": "web"}
		}},
		premium: resourceSpec{"azurerm_application_insights", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"application_type": "web", "sampling_percentage": 100}
		}},
	},
}

var gcpVariants = map[types.ServiceClass]variantSet{
	"compute_container": {
		economical: resourceSpec{"google_cloud_run_v2_service", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"cpu": tierInt(t, 1, 2, 4), "memory": tierStr(t, "512Mi", "1Gi", "2Gi")}
		}},
		premium: resourceSpec{"google_cloud_run_v2_service", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"cpu": tierInt(t, 2, 4, 8), "memory": tierStr(t, "2Gi", "4Gi", "8Gi"), "min_instance_count": tierInt(t, 1, 2, 4)}
		}},
	},
	"compute_vm": {
		economical: resourceSpec{"google_compute_instance", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"machine_type": tierStr(t, "e2-small", "e2-medium", "n2-standard-2")}
		}},
		premium: resourceSpec{"google_compute_instance", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"machine_type": tierStr(t, "n2-standard-2", "n2-standard-4", "n2-standard-8")}
		}},
	},
	"serverless_function": {
		economical: resourceSpec{"google_cloudfunctions2_function", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"available_memory": tierStr(t, "256M", "512M", "1024M")}
		}},
		premium: resourceSpec{"google_cloudfunctions2_function", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"available_memory": tierStr(t, "1024M", "2048M", "4096M")}
		}},
	},
	"relational_database": {
		economical: resourceSpec{"google_sql_database_instance", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"tier": tierStr(t, "db-f1-micro", "db-g1-small", "db-custom-2-8192"), "database_version": "POSTGRES_15"}
		}},
		premium: resourceSpec{"google_sql_database_instance", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"tier": tierStr(t, "db-custom-2-8192", "db-custom-4-16384", "db-custom-8-32768"), "database_version": "POSTGRES_15", "availability_type": "REGIONAL"}
		}},
	},
	"nosql_database": {
		economical: resourceSpec{"google_firestore_database", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"type": "FIRESTORE_NATIVE"}
		}},
		premium: resourceSpec{"google_bigtable_instance", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"num_nodes": tierInt(t, 1, 3, 6)}
		}},
	},
	"cache": {
		economical: resourceSpec{"google_redis_instance", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"tier": "BASIC", "memory_size_gb": tierInt(t, 1, 2, 4)}
		}},
		premium: resourceSpec{"google_redis_instance", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"tier": "STANDARD_HA", "memory_size_gb": tierInt(t, 4, 8, 16)}
		}},
	},
	"object_storage": {
		economical: resourceSpec{"google_storage_bucket", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"storage_class": "STANDARD"}
		}},
		premium: resourceSpec{"google_storage_bucket", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"storage_class": "STANDARD", "versioning_enabled": true}
		}},
	},
	"cdn": {
		economical: resourceSpec{"google_compute_backend_bucket", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"enable_cdn": true}
		}},
		premium: resourceSpec{"google_compute_backend_bucket", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"enable_cdn": true, "compression_mode": "AUTOMATIC"}
		}},
	},
	"dns": {
		economical: resourceSpec{"google_dns_managed_zone", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{}
		}},
		premium: resourceSpec{"google_dns_managed_zone", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{}
		}},
	},
	"load_balancer": {
		economical: resourceSpec{"google_compute_forwarding_rule", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"load_balancing_scheme": "EXTERNAL"}
		}},
		premium: resourceSpec{"google_compute_forwarding_rule", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"load_balancing_scheme": "EXTERNAL_MANAGED"}
		}},
	},
	"api_gateway": {
		economical: resourceSpec{"google_api_gateway_api", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{}
		}},
		premium: resourceSpec{"google_api_gateway_api", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"managed_service": true}
		}},
	},
	"message_queue": {
		economical: resourceSpec{"google_pubsub_topic", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{}
		}},
		premium: resourceSpec{"google_pubsub_topic", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"message_retention_duration": "604800s"}
		}},
	},
	"search_engine": {
		economical: resourceSpec{"google_discovery_engine_data_store", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"content_config": "CONTENT_REQUIRED"}
		}},
		premium: resourceSpec{"google_discovery_engine_data_store", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{"content_config": "CONTENT_REQUIRED", "solution_types": "SOLUTION_TYPE_SEARCH"}
		}},
	},
	"monitoring": {
		economical: resourceSpec{"google_monitoring_dashboard", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{}
		}},
		premium: resourceSpec{"google_monitoring_dashboard", func(t types.SizingTier) map[string]interface{} {
			return map[string]interface{}{}
		}},
	},
}

// variantTables maps provider to the per-class variant table
var variantTables = map[types.Provider]map[types.ServiceClass]variantSet{
	types.ProviderAWS:   awsVariants,
	types.ProviderAzure: azureVariants,
	types.ProviderGCP:   gcpVariants,
}
