package product

// ColumnTypes returns the explicit column-to-SQL-type adjustment map for
// the product table, used instead of inference when the schema is known:
// the category trail is stored as a JSON array, every measured quantity as
// DECIMAL(8,2).
func ColumnTypes() map[string]string {
	return map[string]string{
		"product_name":                      "TEXT",
		"category":                          "JSON",
		"image":                             "TEXT",
		"price":                             "DECIMAL(8,2)",
		"product_note":                      "TEXT",
		"price_note":                        "DECIMAL(8,2)",
		"price_note_dim":                    "TEXT",
		"feature":                           "TEXT",
		"calorific_value_in_kJ":             "DECIMAL(8,2)",
		"calorific_value_in_kcal":           "DECIMAL(8,2)",
		"fat_in_g":                          "DECIMAL(8,2)",
		"hereof_saturated_fatty_acids_in_g": "DECIMAL(8,2)",
		"carbohydrates_in_g":                "DECIMAL(8,2)",
		"hereof_sugar_in_g":                 "DECIMAL(8,2)",
		"protein_in_g":                      "DECIMAL(8,2)",
		"salt_in_g":                         "DECIMAL(8,2)",
		"package_size":                      "DECIMAL(8,2)",
		"package_size_dim":                  "TEXT",
		"serving_size":                      "DECIMAL(8,2)",
		"serving_size_dim":                  "TEXT",
		"timestamp":                         "TIMESTAMP",
	}
}

// JSONArrayColumns lists the columns whose values are uploaded as JSON
// array literals rather than plain text.
func JSONArrayColumns() []string {
	var cols []string
	for col, typ := range ColumnTypes() {
		if typ == "JSON" {
			cols = append(cols, col)
		}
	}
	return cols
}
