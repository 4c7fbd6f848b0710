package policy

// documentSchema is the strict JSON Schema for a policy document on
// disk. "additionalProperties": false on the document and on every
// field and portion rule rejects unknown fields, satisfying §6's
// "unknown fields are rejected (strict schema)" requirement;
// audit_metadata is a free-form string map and accepts any key.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "required": ["name", "scope", "is_active", "is_enforced"],
  "properties": {
    "name": {"type": "string"},
    "description": {"type": "string"},
    "scope": {"type": "string", "enum": ["GLOBAL", "ROLE_BASED", "ATTRIBUTE_BASED", "RESOURCE_BASED"]},
    "applicable_roles": {"type": "array", "items": {"type": "string"}},
    "is_active": {"type": "boolean"},
    "is_enforced": {"type": "boolean"},
    "obligations": {"type": "array", "items": {"type": "string"}},
    "audit_metadata": {"type": "object", "additionalProperties": {"type": "string"}},
    "field_rules": {"type": "array", "items": {"$ref": "#/definitions/fieldRule"}},
    "portion_rules": {"type": "array", "items": {"$ref": "#/definitions/portionRule"}}
  },
  "definitions": {
    "fieldRule": {
      "type": "object",
      "additionalProperties": false,
      "required": ["field_path", "strategy"],
      "properties": {
        "field_path": {"type": "string"},
        "field_type": {"type": "string"},
        "strategy": {"type": "string", "enum": ["MASK_BRACKETS", "MASK_ASTERISKS", "MASK_HASH", "REMOVE_FIELD", "TRUNCATE"]},
        "required_clearance": {"type": ["string", "null"], "enum": ["U", "CUI", "C", "S", "TS", "TS//SCI", null]},
        "required_compartments": {"type": "array", "items": {"type": "string"}},
        "description": {"type": "string"},
        "tags": {"type": "array", "items": {"type": "string"}}
      }
    },
    "portionRule": {
      "type": "object",
      "additionalProperties": false,
      "required": ["portion_name", "portion_marking", "strategy"],
      "properties": {
        "portion_name": {"type": "string"},
        "portion_marking": {"type": "string"},
        "minimum_clearance": {"type": ["string", "null"], "enum": ["U", "CUI", "C", "S", "TS", "TS//SCI", null]},
        "required_compartments": {"type": "array", "items": {"type": "string"}},
        "strategy": {"type": "string", "enum": ["MASK_BRACKETS", "MASK_ASTERISKS", "MASK_HASH", "REMOVE_FIELD", "TRUNCATE"]}
      }
    }
  }
}`
