// Package descriptor generates the minimal declarative resource
// descriptor consumed by the authoritative pricing engine. The
// descriptor grammar (Terraform syntax) is owned by that engine and
// treated here as opaque serialization.
package descriptor

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"cloudcost/core/catalog"
	"cloudcost/core/types"
	"cloudcost/internal/errors"
)

// DescriptorFileName is the descriptor file written into the run dir
const DescriptorFileName = "main.tf"

// ResourceEntry is one priced resource in a descriptor
type ResourceEntry struct {
	// Address identifies the resource (resource_type.service_class)
	Address types.ResourceAddress

	// ResourceType is the provider resource type
	ResourceType string

	// ServiceClass is the catalog service this resource prices
	ServiceClass types.ServiceClass

	// Arguments are the capacity parameters for the selected variant
	Arguments map[string]interface{}
}

// Descriptor is the ordered priceable resource list for one provider.
// Created per estimate request, consumed once, then discardable.
type Descriptor struct {
	// Provider is the target cloud provider
	Provider types.Provider

	// Tier is the sizing tier the capacity parameters reflect
	Tier types.SizingTier

	// Profile is the cost profile that selected the variants
	Profile types.CostProfile

	// Entries are the priced resources, one per deployable service
	Entries []ResourceEntry
}

// Generator builds resource descriptors from deployable services
type Generator struct {
	catalog *catalog.Catalog
}

// NewGenerator creates a generator after verifying that every
// deployable catalog class has a resource variant for every provider.
// A missing mapping is a construction-time error, not a silent nil at
// pricing time.
func NewGenerator(cat *catalog.Catalog) (*Generator, error) {
	for _, provider := range types.AllProviders() {
		table := variantTables[provider]
		for _, def := range cat.Deployable() {
			if _, ok := table[def.Class]; !ok {
				return nil, errors.Newf(errors.TypeConfig,
					"no %s resource variant for deployable service class %q", provider, def.Class)
			}
		}
	}
	return &Generator{catalog: cat}, nil
}

// Generate emits exactly one descriptor entry per deployable service.
// The pattern policy is enforced before anything is serialized; a
// forbidden category yields PolicyViolationError with no fallback.
func (g *Generator) Generate(provider types.Provider, services []types.ServiceDefinition,
	tier types.SizingTier, profile types.CostProfile, pattern types.PatternName) (*Descriptor, error) {

	if !provider.IsValid() {
		return nil, errors.Newf(errors.TypeInput, "unknown provider: %s", provider)
	}

	policy, err := PolicyFor(pattern)
	if err != nil {
		return nil, err
	}
	for _, svc := range services {
		if policy.Forbids(svc.Category) {
			return nil, &PolicyViolationError{
				Pattern:  pattern,
				Class:    svc.Class,
				Category: svc.Category,
				Provider: provider,
			}
		}
	}

	table := variantTables[provider]
	entries := make([]ResourceEntry, 0, len(services))
	for _, svc := range services {
		set, ok := table[svc.Class]
		if !ok {
			return nil, errors.Newf(errors.TypeInternal,
				"no %s resource variant for service class %q", provider, svc.Class)
		}
		spec := set.forProfile(profile)
		entries = append(entries, ResourceEntry{
			Address:      types.ResourceAddress(spec.resourceType + "." + svc.Class.String()),
			ResourceType: spec.resourceType,
			ServiceClass: svc.Class,
			Arguments:    spec.args(tier),
		})
	}

	return &Descriptor{
		Provider: provider,
		Tier:     tier,
		Profile:  profile,
		Entries:  entries,
	}, nil
}

// WriteFile serializes the descriptor into dir using the engine's
// Terraform-syntax grammar and returns the file path.
func (d *Descriptor) WriteFile(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrap(errors.TypeInternal, "failed to create descriptor dir", err)
	}

	f := hclwrite.NewEmptyFile()
	body := f.Body()
	for i, entry := range d.Entries {
		block := body.AppendNewBlock("resource", []string{entry.ResourceType, entry.ServiceClass.String()})
		blockBody := block.Body()

		keys := make([]string, 0, len(entry.Arguments))
		for k := range entry.Arguments {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			blockBody.SetAttributeValue(k, ctyValue(entry.Arguments[k]))
		}

		if i < len(d.Entries)-1 {
			body.AppendNewline()
		}
	}

	path := filepath.Join(dir, DescriptorFileName)
	if err := os.WriteFile(path, f.Bytes(), 0644); err != nil {
		return "", errors.Wrap(errors.TypeInternal, "failed to write descriptor", err)
	}
	return path, nil
}

// ResourceTypeIndex maps every known resource type, across all
// providers and variants, to the service class it prices. Used by the
// result normalizer as its static mapping table.
func ResourceTypeIndex() map[string]types.ServiceClass {
	index := make(map[string]types.ServiceClass)
	for _, table := range variantTables {
		for class, set := range table {
			index[set.economical.resourceType] = class
			index[set.premium.resourceType] = class
		}
	}
	return index
}

func ctyValue(v interface{}) cty.Value {
	switch val := v.(type) {
	case string:
		return cty.StringVal(val)
	case bool:
		return cty.BoolVal(val)
	case int:
		return cty.NumberIntVal(int64(val))
	case int64:
		return cty.NumberIntVal(val)
	case float64:
		return cty.NumberFloatVal(val)
	default:
		return cty.StringVal(fmt.Sprintf("%v", val))
	}
}
