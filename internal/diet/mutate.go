package diet

import "fmt"

// AddItem adds item to the meal of type mt. When the meal already holds an
// item for the same food, the quantities are summed instead of appending a
// second row. Otherwise the item is appended.
func AddItem(d DailyDiet, mt MealType, item MealItem) (DailyDiet, error) {
	if err := item.Validate(); err != nil {
		return d, err
	}
	mi := d.mealIndex(mt)
	if mi < 0 {
		return d, fmt.Errorf("%w: %q", ErrUnknownMealType, mt)
	}
	out := d.Clone()
	meal := &out.Meals[mi]
	for i := range meal.Items {
		if meal.Items[i].FoodID == item.FoodID {
			sum := meal.Items[i].Quantity + item.Quantity
			if err := CheckQuantity(sum); err != nil {
				return d, err
			}
			meal.Items[i].Quantity = sum
			return out, nil
		}
	}
	meal.Items = append(meal.Items, item)
	return out, nil
}

// RemoveItem removes the item at index within the meal of type mt.
func RemoveItem(d DailyDiet, mt MealType, index int) (DailyDiet, error) {
	mi, err := itemPosition(d, mt, index)
	if err != nil {
		return d, err
	}
	out := d.Clone()
	items := out.Meals[mi].Items
	out.Meals[mi].Items = append(items[:index:index], items[index+1:]...)
	return out, nil
}

// UpdateItemQuantity sets the quantity of the item at index within the meal of
// type mt.
func UpdateItemQuantity(d DailyDiet, mt MealType, index int, quantity float64) (DailyDiet, error) {
	if err := CheckQuantity(quantity); err != nil {
		return d, err
	}
	mi, err := itemPosition(d, mt, index)
	if err != nil {
		return d, err
	}
	out := d.Clone()
	out.Meals[mi].Items[index].Quantity = quantity
	return out, nil
}

func itemPosition(d DailyDiet, mt MealType, index int) (int, error) {
	mi := d.mealIndex(mt)
	if mi < 0 {
		return -1, fmt.Errorf("%w: %q", ErrUnknownMealType, mt)
	}
	if index < 0 || index >= len(d.Meals[mi].Items) {
		return -1, fmt.Errorf("%w: %d of %d in %s", ErrItemIndexOutOfRange, index, len(d.Meals[mi].Items), mt)
	}
	return mi, nil
}

// AppendDiet returns a copy of p with d added after the existing diets.
func AppendDiet(p Profile, d DailyDiet) Profile {
	out := p.Clone()
	out.Diets = append(out.Diets, d.Clone())
	return out
}

// ReplaceDiet swaps the diet with d.ID for d. When no such diet exists the
// profile is returned unchanged and the second result is false.
func ReplaceDiet(p Profile, d DailyDiet) (Profile, bool) {
	i := p.dietIndex(d.ID)
	if i < 0 {
		return p, false
	}
	out := p.Clone()
	out.Diets[i] = d.Clone()
	return out, true
}

// DeleteDiet removes the diet with the given id. Absence is a no-op.
func DeleteDiet(p Profile, id string) Profile {
	out := p.Clone()
	kept := out.Diets[:0]
	for _, d := range out.Diets {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	out.Diets = kept
	return out
}
