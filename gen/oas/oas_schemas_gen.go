// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"fmt"
	"time"

	"github.com/go-faster/errors"
)

func (s *ErrorStatusCode) Error() string {
	return fmt.Sprintf("code %d: %+v", s.StatusCode, s.Response)
}

// Ref: #/components/schemas/Address
type Address struct {
	FullName   string    `json:"fullName"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	PostalCode string    `json:"postalCode"`
	Country    string    `json:"country"`
	Phone      OptString `json:"phone"`
}

// GetFullName returns the value of FullName.
func (s *Address) GetFullName() string {
	return s.FullName
}

// GetAddress returns the value of Address.
func (s *Address) GetAddress() string {
	return s.Address
}

// GetCity returns the value of City.
func (s *Address) GetCity() string {
	return s.City
}

// GetPostalCode returns the value of PostalCode.
func (s *Address) GetPostalCode() string {
	return s.PostalCode
}

// GetCountry returns the value of Country.
func (s *Address) GetCountry() string {
	return s.Country
}

// GetPhone returns the value of Phone.
func (s *Address) GetPhone() OptString {
	return s.Phone
}

// SetFullName sets the value of FullName.
func (s *Address) SetFullName(val string) {
	s.FullName = val
}

// SetAddress sets the value of Address.
func (s *Address) SetAddress(val string) {
	s.Address = val
}

// SetCity sets the value of City.
func (s *Address) SetCity(val string) {
	s.City = val
}

// SetPostalCode sets the value of PostalCode.
func (s *Address) SetPostalCode(val string) {
	s.PostalCode = val
}

// SetCountry sets the value of Country.
func (s *Address) SetCountry(val string) {
	s.Country = val
}

// SetPhone sets the value of Phone.
func (s *Address) SetPhone(val OptString) {
	s.Phone = val
}

type BearerAuth struct {
	Token string
	Roles []string
}

// GetToken returns the value of Token.
func (s *BearerAuth) GetToken() string {
	return s.Token
}

// GetRoles returns the value of Roles.
func (s *BearerAuth) GetRoles() []string {
	return s.Roles
}

// SetToken sets the value of Token.
func (s *BearerAuth) SetToken(val string) {
	s.Token = val
}

// SetRoles sets the value of Roles.
func (s *BearerAuth) SetRoles(val []string) {
	s.Roles = val
}

// Ref: #/components/schemas/Cart
type Cart struct {
	Items        []CartItem `json:"items"`
	CartValue    float64    `json:"cartValue"`
	ShippingCost float64    `json:"shippingCost"`
	OrderTotal   float64    `json:"orderTotal"`
}

// GetItems returns the value of Items.
func (s *Cart) GetItems() []CartItem {
	return s.Items
}

// GetCartValue returns the value of CartValue.
func (s *Cart) GetCartValue() float64 {
	return s.CartValue
}

// GetShippingCost returns the value of ShippingCost.
func (s *Cart) GetShippingCost() float64 {
	return s.ShippingCost
}

// GetOrderTotal returns the value of OrderTotal.
func (s *Cart) GetOrderTotal() float64 {
	return s.OrderTotal
}

// SetItems sets the value of Items.
func (s *Cart) SetItems(val []CartItem) {
	s.Items = val
}

// SetCartValue sets the value of CartValue.
func (s *Cart) SetCartValue(val float64) {
	s.CartValue = val
}

// SetShippingCost sets the value of ShippingCost.
func (s *Cart) SetShippingCost(val float64) {
	s.ShippingCost = val
}

// SetOrderTotal sets the value of OrderTotal.
func (s *Cart) SetOrderTotal(val float64) {
	s.OrderTotal = val
}

// Ref: #/components/schemas/CartItem
type CartItem struct {
	ProductId string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}

// GetProductId returns the value of ProductId.
func (s *CartItem) GetProductId() string {
	return s.ProductId
}

// GetName returns the value of Name.
func (s *CartItem) GetName() string {
	return s.Name
}

// GetUnitPrice returns the value of UnitPrice.
func (s *CartItem) GetUnitPrice() float64 {
	return s.UnitPrice
}

// GetQuantity returns the value of Quantity.
func (s *CartItem) GetQuantity() int {
	return s.Quantity
}

// GetLineTotal returns the value of LineTotal.
func (s *CartItem) GetLineTotal() float64 {
	return s.LineTotal
}

// SetProductId sets the value of ProductId.
func (s *CartItem) SetProductId(val string) {
	s.ProductId = val
}

// SetName sets the value of Name.
func (s *CartItem) SetName(val string) {
	s.Name = val
}

// SetUnitPrice sets the value of UnitPrice.
func (s *CartItem) SetUnitPrice(val float64) {
	s.UnitPrice = val
}

// SetQuantity sets the value of Quantity.
func (s *CartItem) SetQuantity(val int) {
	s.Quantity = val
}

// SetLineTotal sets the value of LineTotal.
func (s *CartItem) SetLineTotal(val float64) {
	s.LineTotal = val
}

// Ref: #/components/schemas/CartItemRequest
type CartItemRequest struct {
	ProductId string `json:"productId"`
	// Defaults to 1.
	Quantity OptInt `json:"quantity"`
}

// GetProductId returns the value of ProductId.
func (s *CartItemRequest) GetProductId() string {
	return s.ProductId
}

// GetQuantity returns the value of Quantity.
func (s *CartItemRequest) GetQuantity() OptInt {
	return s.Quantity
}

// SetProductId sets the value of ProductId.
func (s *CartItemRequest) SetProductId(val string) {
	s.ProductId = val
}

// SetQuantity sets the value of Quantity.
func (s *CartItemRequest) SetQuantity(val OptInt) {
	s.Quantity = val
}

// Ref: #/components/schemas/CartQuantityRequest
type CartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GetQuantity returns the value of Quantity.
func (s *CartQuantityRequest) GetQuantity() int {
	return s.Quantity
}

// SetQuantity sets the value of Quantity.
func (s *CartQuantityRequest) SetQuantity(val int) {
	s.Quantity = val
}

// Ref: #/components/schemas/Coupon
type Coupon struct {
	ID               string       `json:"id"`
	Code             string       `json:"code"`
	Description      string       `json:"description"`
	DiscountType     DiscountType `json:"discountType"`
	DiscountValue    float64      `json:"discountValue"`
	MinOrderValue    float64      `json:"minOrderValue"`
	ExpiresAt        NilDateTime  `json:"expiresAt"`
	UsageLimit       NilInt       `json:"usageLimit"`
	UsageCount       int          `json:"usageCount"`
	PerUserLimit     int          `json:"perUserLimit"`
	IsActive         bool         `json:"isActive"`
	IsFirstOrderOnly bool         `json:"isFirstOrderOnly"`
	AllowedUsers     []string     `json:"allowedUsers"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}

// GetID returns the value of ID.
func (s *Coupon) GetID() string {
	return s.ID
}

// GetCode returns the value of Code.
func (s *Coupon) GetCode() string {
	return s.Code
}

// GetDescription returns the value of Description.
func (s *Coupon) GetDescription() string {
	return s.Description
}

// GetDiscountType returns the value of DiscountType.
func (s *Coupon) GetDiscountType() DiscountType {
	return s.DiscountType
}

// GetDiscountValue returns the value of DiscountValue.
func (s *Coupon) GetDiscountValue() float64 {
	return s.DiscountValue
}

// GetMinOrderValue returns the value of MinOrderValue.
func (s *Coupon) GetMinOrderValue() float64 {
	return s.MinOrderValue
}

// GetExpiresAt returns the value of ExpiresAt.
func (s *Coupon) GetExpiresAt() NilDateTime {
	return s.ExpiresAt
}

// GetUsageLimit returns the value of UsageLimit.
func (s *Coupon) GetUsageLimit() NilInt {
	return s.UsageLimit
}

// GetUsageCount returns the value of UsageCount.
func (s *Coupon) GetUsageCount() int {
	return s.UsageCount
}

// GetPerUserLimit returns the value of PerUserLimit.
func (s *Coupon) GetPerUserLimit() int {
	return s.PerUserLimit
}

// GetIsActive returns the value of IsActive.
func (s *Coupon) GetIsActive() bool {
	return s.IsActive
}

// GetIsFirstOrderOnly returns the value of IsFirstOrderOnly.
func (s *Coupon) GetIsFirstOrderOnly() bool {
	return s.IsFirstOrderOnly
}

// GetAllowedUsers returns the value of AllowedUsers.
func (s *Coupon) GetAllowedUsers() []string {
	return s.AllowedUsers
}

// GetCreatedAt returns the value of CreatedAt.
func (s *Coupon) GetCreatedAt() time.Time {
	return s.CreatedAt
}

// GetUpdatedAt returns the value of UpdatedAt.
func (s *Coupon) GetUpdatedAt() time.Time {
	return s.UpdatedAt
}

// SetID sets the value of ID.
func (s *Coupon) SetID(val string) {
	s.ID = val
}

// SetCode sets the value of Code.
func (s *Coupon) SetCode(val string) {
	s.Code = val
}

// SetDescription sets the value of Description.
func (s *Coupon) SetDescription(val string) {
	s.Description = val
}

// SetDiscountType sets the value of DiscountType.
func (s *Coupon) SetDiscountType(val DiscountType) {
	s.DiscountType = val
}

// SetDiscountValue sets the value of DiscountValue.
func (s *Coupon) SetDiscountValue(val float64) {
	s.DiscountValue = val
}

// SetMinOrderValue sets the value of MinOrderValue.
func (s *Coupon) SetMinOrderValue(val float64) {
	s.MinOrderValue = val
}

// SetExpiresAt sets the value of ExpiresAt.
func (s *Coupon) SetExpiresAt(val NilDateTime) {
	s.ExpiresAt = val
}

// SetUsageLimit sets the value of UsageLimit.
func (s *Coupon) SetUsageLimit(val NilInt) {
	s.UsageLimit = val
}

// SetUsageCount sets the value of UsageCount.
func (s *Coupon) SetUsageCount(val int) {
	s.UsageCount = val
}

// SetPerUserLimit sets the value of PerUserLimit.
func (s *Coupon) SetPerUserLimit(val int) {
	s.PerUserLimit = val
}

// SetIsActive sets the value of IsActive.
func (s *Coupon) SetIsActive(val bool) {
	s.IsActive = val
}

// SetIsFirstOrderOnly sets the value of IsFirstOrderOnly.
func (s *Coupon) SetIsFirstOrderOnly(val bool) {
	s.IsFirstOrderOnly = val
}

// SetAllowedUsers sets the value of AllowedUsers.
func (s *Coupon) SetAllowedUsers(val []string) {
	s.AllowedUsers = val
}

// SetCreatedAt sets the value of CreatedAt.
func (s *Coupon) SetCreatedAt(val time.Time) {
	s.CreatedAt = val
}

// SetUpdatedAt sets the value of UpdatedAt.
func (s *Coupon) SetUpdatedAt(val time.Time) {
	s.UpdatedAt = val
}

// Ref: #/components/schemas/CouponQuote
type CouponQuote struct {
	Code              string       `json:"code"`
	Description       string       `json:"description"`
	DiscountType      DiscountType `json:"discountType"`
	DiscountValue     float64      `json:"discountValue"`
	DiscountAmount    float64      `json:"discountAmount"`
	OriginalCartValue float64      `json:"originalCartValue"`
	ShippingCost      float64      `json:"shippingCost"`
	OriginalTotal     float64      `json:"originalTotal"`
	FinalTotal        float64      `json:"finalTotal"`
	MinOrderValue     float64      `json:"minOrderValue"`
	IsFirstOrderOnly  bool         `json:"isFirstOrderOnly"`
	IsActive          bool         `json:"isActive"`
	UsageCount        int          `json:"usageCount"`
	UsageLimit        NilInt       `json:"usageLimit"`
	PerUserLimit      int          `json:"perUserLimit"`
}

// GetCode returns the value of Code.
func (s *CouponQuote) GetCode() string {
	return s.Code
}

// GetDescription returns the value of Description.
func (s *CouponQuote) GetDescription() string {
	return s.Description
}

// GetDiscountType returns the value of DiscountType.
func (s *CouponQuote) GetDiscountType() DiscountType {
	return s.DiscountType
}

// GetDiscountValue returns the value of DiscountValue.
func (s *CouponQuote) GetDiscountValue() float64 {
	return s.DiscountValue
}

// GetDiscountAmount returns the value of DiscountAmount.
func (s *CouponQuote) GetDiscountAmount() float64 {
	return s.DiscountAmount
}

// GetOriginalCartValue returns the value of OriginalCartValue.
func (s *CouponQuote) GetOriginalCartValue() float64 {
	return s.OriginalCartValue
}

// GetShippingCost returns the value of ShippingCost.
func (s *CouponQuote) GetShippingCost() float64 {
	return s.ShippingCost
}

// GetOriginalTotal returns the value of OriginalTotal.
func (s *CouponQuote) GetOriginalTotal() float64 {
	return s.OriginalTotal
}

// GetFinalTotal returns the value of FinalTotal.
func (s *CouponQuote) GetFinalTotal() float64 {
	return s.FinalTotal
}

// GetMinOrderValue returns the value of MinOrderValue.
func (s *CouponQuote) GetMinOrderValue() float64 {
	return s.MinOrderValue
}

// GetIsFirstOrderOnly returns the value of IsFirstOrderOnly.
func (s *CouponQuote) GetIsFirstOrderOnly() bool {
	return s.IsFirstOrderOnly
}

// GetIsActive returns the value of IsActive.
func (s *CouponQuote) GetIsActive() bool {
	return s.IsActive
}

// GetUsageCount returns the value of UsageCount.
func (s *CouponQuote) GetUsageCount() int {
	return s.UsageCount
}

// GetUsageLimit returns the value of UsageLimit.
func (s *CouponQuote) GetUsageLimit() NilInt {
	return s.UsageLimit
}

// GetPerUserLimit returns the value of PerUserLimit.
func (s *CouponQuote) GetPerUserLimit() int {
	return s.PerUserLimit
}

// SetCode sets the value of Code.
func (s *CouponQuote) SetCode(val string) {
	s.Code = val
}

// SetDescription sets the value of Description.
func (s *CouponQuote) SetDescription(val string) {
	s.Description = val
}

// SetDiscountType sets the value of DiscountType.
func (s *CouponQuote) SetDiscountType(val DiscountType) {
	s.DiscountType = val
}

// SetDiscountValue sets the value of DiscountValue.
func (s *CouponQuote) SetDiscountValue(val float64) {
	s.DiscountValue = val
}

// SetDiscountAmount sets the value of DiscountAmount.
func (s *CouponQuote) SetDiscountAmount(val float64) {
	s.DiscountAmount = val
}

// SetOriginalCartValue sets the value of OriginalCartValue.
func (s *CouponQuote) SetOriginalCartValue(val float64) {
	s.OriginalCartValue = val
}

// SetShippingCost sets the value of ShippingCost.
func (s *CouponQuote) SetShippingCost(val float64) {
	s.ShippingCost = val
}

// SetOriginalTotal sets the value of OriginalTotal.
func (s *CouponQuote) SetOriginalTotal(val float64) {
	s.OriginalTotal = val
}

// SetFinalTotal sets the value of FinalTotal.
func (s *CouponQuote) SetFinalTotal(val float64) {
	s.FinalTotal = val
}

// SetMinOrderValue sets the value of MinOrderValue.
func (s *CouponQuote) SetMinOrderValue(val float64) {
	s.MinOrderValue = val
}

// SetIsFirstOrderOnly sets the value of IsFirstOrderOnly.
func (s *CouponQuote) SetIsFirstOrderOnly(val bool) {
	s.IsFirstOrderOnly = val
}

// SetIsActive sets the value of IsActive.
func (s *CouponQuote) SetIsActive(val bool) {
	s.IsActive = val
}

// SetUsageCount sets the value of UsageCount.
func (s *CouponQuote) SetUsageCount(val int) {
	s.UsageCount = val
}

// SetUsageLimit sets the value of UsageLimit.
func (s *CouponQuote) SetUsageLimit(val NilInt) {
	s.UsageLimit = val
}

// SetPerUserLimit sets the value of PerUserLimit.
func (s *CouponQuote) SetPerUserLimit(val int) {
	s.PerUserLimit = val
}

// Ref: #/components/schemas/CreateCouponRequest
type CreateCouponRequest struct {
	Code          string       `json:"code"`
	Description   OptString    `json:"description"`
	DiscountType  DiscountType `json:"discountType"`
	DiscountValue float64      `json:"discountValue"`
	MinOrderValue OptFloat64   `json:"minOrderValue"`
	ExpiresAt     OptDateTime  `json:"expiresAt"`
	// Zero, negative or null means unlimited.
	UsageLimit            OptNilInt `json:"usageLimit"`
	PerUserLimit          OptInt    `json:"perUserLimit"`
	IsActive              OptBool   `json:"isActive"`
	IsFirstOrderOnly      OptBool   `json:"isFirstOrderOnly"`
	AllowedUsers          []string  `json:"allowedUsers"`
	RestrictedToUserEmail OptString `json:"restrictedToUserEmail"`
}

// GetCode returns the value of Code.
func (s *CreateCouponRequest) GetCode() string {
	return s.Code
}

// GetDescription returns the value of Description.
func (s *CreateCouponRequest) GetDescription() OptString {
	return s.Description
}

// GetDiscountType returns the value of DiscountType.
func (s *CreateCouponRequest) GetDiscountType() DiscountType {
	return s.DiscountType
}

// GetDiscountValue returns the value of DiscountValue.
func (s *CreateCouponRequest) GetDiscountValue() float64 {
	return s.DiscountValue
}

// GetMinOrderValue returns the value of MinOrderValue.
func (s *CreateCouponRequest) GetMinOrderValue() OptFloat64 {
	return s.MinOrderValue
}

// GetExpiresAt returns the value of ExpiresAt.
func (s *CreateCouponRequest) GetExpiresAt() OptDateTime {
	return s.ExpiresAt
}

// GetUsageLimit returns the value of UsageLimit.
func (s *CreateCouponRequest) GetUsageLimit() OptNilInt {
	return s.UsageLimit
}

// GetPerUserLimit returns the value of PerUserLimit.
func (s *CreateCouponRequest) GetPerUserLimit() OptInt {
	return s.PerUserLimit
}

// GetIsActive returns the value of IsActive.
func (s *CreateCouponRequest) GetIsActive() OptBool {
	return s.IsActive
}

// GetIsFirstOrderOnly returns the value of IsFirstOrderOnly.
func (s *CreateCouponRequest) GetIsFirstOrderOnly() OptBool {
	return s.IsFirstOrderOnly
}

// GetAllowedUsers returns the value of AllowedUsers.
func (s *CreateCouponRequest) GetAllowedUsers() []string {
	return s.AllowedUsers
}

// GetRestrictedToUserEmail returns the value of RestrictedToUserEmail.
func (s *CreateCouponRequest) GetRestrictedToUserEmail() OptString {
	return s.RestrictedToUserEmail
}

// SetCode sets the value of Code.
func (s *CreateCouponRequest) SetCode(val string) {
	s.Code = val
}

// SetDescription sets the value of Description.
func (s *CreateCouponRequest) SetDescription(val OptString) {
	s.Description = val
}

// SetDiscountType sets the value of DiscountType.
func (s *CreateCouponRequest) SetDiscountType(val DiscountType) {
	s.DiscountType = val
}

// SetDiscountValue sets the value of DiscountValue.
func (s *CreateCouponRequest) SetDiscountValue(val float64) {
	s.DiscountValue = val
}

// SetMinOrderValue sets the value of MinOrderValue.
func (s *CreateCouponRequest) SetMinOrderValue(val OptFloat64) {
	s.MinOrderValue = val
}

// SetExpiresAt sets the value of ExpiresAt.
func (s *CreateCouponRequest) SetExpiresAt(val OptDateTime) {
	s.ExpiresAt = val
}

// SetUsageLimit sets the value of UsageLimit.
func (s *CreateCouponRequest) SetUsageLimit(val OptNilInt) {
	s.UsageLimit = val
}

// SetPerUserLimit sets the value of PerUserLimit.
func (s *CreateCouponRequest) SetPerUserLimit(val OptInt) {
	s.PerUserLimit = val
}

// SetIsActive sets the value of IsActive.
func (s *CreateCouponRequest) SetIsActive(val OptBool) {
	s.IsActive = val
}

// SetIsFirstOrderOnly sets the value of IsFirstOrderOnly.
func (s *CreateCouponRequest) SetIsFirstOrderOnly(val OptBool) {
	s.IsFirstOrderOnly = val
}

// SetAllowedUsers sets the value of AllowedUsers.
func (s *CreateCouponRequest) SetAllowedUsers(val []string) {
	s.AllowedUsers = val
}

// SetRestrictedToUserEmail sets the value of RestrictedToUserEmail.
func (s *CreateCouponRequest) SetRestrictedToUserEmail(val OptString) {
	s.RestrictedToUserEmail = val
}

// Ref: #/components/schemas/DiscountType
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// AllValues returns all DiscountType values.
func (DiscountType) AllValues() []DiscountType {
	return []DiscountType{
		DiscountTypePercentage,
		DiscountTypeFixed,
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s DiscountType) MarshalText() ([]byte, error) {
	switch s {
	case DiscountTypePercentage:
		return []byte(s), nil
	case DiscountTypeFixed:
		return []byte(s), nil
	default:
		return nil, errors.Errorf("invalid value: %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *DiscountType) UnmarshalText(data []byte) error {
	switch DiscountType(data) {
	case DiscountTypePercentage:
		*s = DiscountTypePercentage
		return nil
	case DiscountTypeFixed:
		*s = DiscountTypeFixed
		return nil
	default:
		return errors.Errorf("invalid value: %q", data)
	}
}

// Ref: #/components/schemas/Error
type Error struct {
	// HTTP status code.
	Code    int    `json:"code"`
	Message string `json:"message"`
	// Stable machine-readable kind, e.g. USAGE_LIMIT_REACHED.
	Reason string `json:"reason"`
	// Set when the coupon passed validation but was taken by a concurrent checkout.
	CouponUnavailable OptBool `json:"couponUnavailable"`
	// Seconds until a throttled request is accepted again.
	RetryAfter OptInt `json:"retryAfter"`
}

// GetCode returns the value of Code.
func (s *Error) GetCode() int {
	return s.Code
}

// GetMessage returns the value of Message.
func (s *Error) GetMessage() string {
	return s.Message
}

// GetReason returns the value of Reason.
func (s *Error) GetReason() string {
	return s.Reason
}

// GetCouponUnavailable returns the value of CouponUnavailable.
func (s *Error) GetCouponUnavailable() OptBool {
	return s.CouponUnavailable
}

// GetRetryAfter returns the value of RetryAfter.
func (s *Error) GetRetryAfter() OptInt {
	return s.RetryAfter
}

// SetCode sets the value of Code.
func (s *Error) SetCode(val int) {
	s.Code = val
}

// SetMessage sets the value of Message.
func (s *Error) SetMessage(val string) {
	s.Message = val
}

// SetReason sets the value of Reason.
func (s *Error) SetReason(val string) {
	s.Reason = val
}

// SetCouponUnavailable sets the value of CouponUnavailable.
func (s *Error) SetCouponUnavailable(val OptBool) {
	s.CouponUnavailable = val
}

// SetRetryAfter sets the value of RetryAfter.
func (s *Error) SetRetryAfter(val OptInt) {
	s.RetryAfter = val
}

// ErrorStatusCode wraps Error with StatusCode.
type ErrorStatusCode struct {
	StatusCode int
	Response   Error
}

// GetStatusCode returns the value of StatusCode.
func (s *ErrorStatusCode) GetStatusCode() int {
	return s.StatusCode
}

// GetResponse returns the value of Response.
func (s *ErrorStatusCode) GetResponse() Error {
	return s.Response
}

// SetStatusCode sets the value of StatusCode.
func (s *ErrorStatusCode) SetStatusCode(val int) {
	s.StatusCode = val
}

// SetResponse sets the value of Response.
func (s *ErrorStatusCode) SetResponse(val Error) {
	s.Response = val
}

// Ref: #/components/schemas/MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

// GetMessage returns the value of Message.
func (s *MessageResponse) GetMessage() string {
	return s.Message
}

// SetMessage sets the value of Message.
func (s *MessageResponse) SetMessage(val string) {
	s.Message = val
}

// NewNilDateTime returns new NilDateTime with value set to v.
func NewNilDateTime(v time.Time) NilDateTime {
	return NilDateTime{
		Value: v,
	}
}

// NilDateTime is nullable time.Time.
type NilDateTime struct {
	Value time.Time
	Null  bool
}

// SetTo sets value to v.
func (o *NilDateTime) SetTo(v time.Time) {
	o.Null = false
	o.Value = v
}

// IsNull returns true if value is Null.
func (o NilDateTime) IsNull() bool { return o.Null }

// SetToNull sets value to null.
func (o *NilDateTime) SetToNull() {
	o.Null = true
	var v time.Time
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o NilDateTime) Get() (v time.Time, ok bool) {
	if o.Null {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o NilDateTime) Or(d time.Time) time.Time {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewNilInt returns new NilInt with value set to v.
func NewNilInt(v int) NilInt {
	return NilInt{
		Value: v,
	}
}

// NilInt is nullable int.
type NilInt struct {
	Value int
	Null  bool
}

// SetTo sets value to v.
func (o *NilInt) SetTo(v int) {
	o.Null = false
	o.Value = v
}

// IsNull returns true if value is Null.
func (o NilInt) IsNull() bool { return o.Null }

// SetToNull sets value to null.
func (o *NilInt) SetToNull() {
	o.Null = true
	var v int
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o NilInt) Get() (v int, ok bool) {
	if o.Null {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o NilInt) Or(d int) int {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewNilString returns new NilString with value set to v.
func NewNilString(v string) NilString {
	return NilString{
		Value: v,
	}
}

// NilString is nullable string.
type NilString struct {
	Value string
	Null  bool
}

// SetTo sets value to v.
func (o *NilString) SetTo(v string) {
	o.Null = false
	o.Value = v
}

// IsNull returns true if value is Null.
func (o NilString) IsNull() bool { return o.Null }

// SetToNull sets value to null.
func (o *NilString) SetToNull() {
	o.Null = true
	var v string
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o NilString) Get() (v string, ok bool) {
	if o.Null {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o NilString) Or(d string) string {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptBool returns new OptBool with value set to v.
func NewOptBool(v bool) OptBool {
	return OptBool{
		Value: v,
		Set:   true,
	}
}

// OptBool is optional bool.
type OptBool struct {
	Value bool
	Set   bool
}

// IsSet returns true if OptBool was set.
func (o OptBool) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptBool) Reset() {
	var v bool
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptBool) SetTo(v bool) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptBool) Get() (v bool, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptBool) Or(d bool) bool {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptDateTime returns new OptDateTime with value set to v.
func NewOptDateTime(v time.Time) OptDateTime {
	return OptDateTime{
		Value: v,
		Set:   true,
	}
}

// OptDateTime is optional time.Time.
type OptDateTime struct {
	Value time.Time
	Set   bool
}

// IsSet returns true if OptDateTime was set.
func (o OptDateTime) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptDateTime) Reset() {
	var v time.Time
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptDateTime) SetTo(v time.Time) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptDateTime) Get() (v time.Time, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptDateTime) Or(d time.Time) time.Time {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptDiscountType returns new OptDiscountType with value set to v.
func NewOptDiscountType(v DiscountType) OptDiscountType {
	return OptDiscountType{
		Value: v,
		Set:   true,
	}
}

// OptDiscountType is optional DiscountType.
type OptDiscountType struct {
	Value DiscountType
	Set   bool
}

// IsSet returns true if OptDiscountType was set.
func (o OptDiscountType) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptDiscountType) Reset() {
	var v DiscountType
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptDiscountType) SetTo(v DiscountType) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptDiscountType) Get() (v DiscountType, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptDiscountType) Or(d DiscountType) DiscountType {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptFloat64 returns new OptFloat64 with value set to v.
func NewOptFloat64(v float64) OptFloat64 {
	return OptFloat64{
		Value: v,
		Set:   true,
	}
}

// OptFloat64 is optional float64.
type OptFloat64 struct {
	Value float64
	Set   bool
}

// IsSet returns true if OptFloat64 was set.
func (o OptFloat64) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptFloat64) Reset() {
	var v float64
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptFloat64) SetTo(v float64) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptFloat64) Get() (v float64, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptFloat64) Or(d float64) float64 {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptInt returns new OptInt with value set to v.
func NewOptInt(v int) OptInt {
	return OptInt{
		Value: v,
		Set:   true,
	}
}

// OptInt is optional int.
type OptInt struct {
	Value int
	Set   bool
}

// IsSet returns true if OptInt was set.
func (o OptInt) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptInt) Reset() {
	var v int
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptInt) SetTo(v int) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptInt) Get() (v int, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptInt) Or(d int) int {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptNilDateTime returns new OptNilDateTime with value set to v.
func NewOptNilDateTime(v time.Time) OptNilDateTime {
	return OptNilDateTime{
		Value: v,
		Set:   true,
	}
}

// OptNilDateTime is optional nullable time.Time.
type OptNilDateTime struct {
	Value time.Time
	Set   bool
	Null  bool
}

// IsSet returns true if OptNilDateTime was set.
func (o OptNilDateTime) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptNilDateTime) Reset() {
	var v time.Time
	o.Value = v
	o.Set = false
	o.Null = false
}

// SetTo sets value to v.
func (o *OptNilDateTime) SetTo(v time.Time) {
	o.Set = true
	o.Null = false
	o.Value = v
}

// IsNull returns true if value is Null.
func (o OptNilDateTime) IsNull() bool { return o.Null }

// SetToNull sets value to null.
func (o *OptNilDateTime) SetToNull() {
	o.Set = true
	o.Null = true
	var v time.Time
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptNilDateTime) Get() (v time.Time, ok bool) {
	if o.Null {
		return v, false
	}
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptNilDateTime) Or(d time.Time) time.Time {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptNilInt returns new OptNilInt with value set to v.
func NewOptNilInt(v int) OptNilInt {
	return OptNilInt{
		Value: v,
		Set:   true,
	}
}

// OptNilInt is optional nullable int.
type OptNilInt struct {
	Value int
	Set   bool
	Null  bool
}

// IsSet returns true if OptNilInt was set.
func (o OptNilInt) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptNilInt) Reset() {
	var v int
	o.Value = v
	o.Set = false
	o.Null = false
}

// SetTo sets value to v.
func (o *OptNilInt) SetTo(v int) {
	o.Set = true
	o.Null = false
	o.Value = v
}

// IsNull returns true if value is Null.
func (o OptNilInt) IsNull() bool { return o.Null }

// SetToNull sets value to null.
func (o *OptNilInt) SetToNull() {
	o.Set = true
	o.Null = true
	var v int
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptNilInt) Get() (v int, ok bool) {
	if o.Null {
		return v, false
	}
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptNilInt) Or(d int) int {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptString returns new OptString with value set to v.
func NewOptString(v string) OptString {
	return OptString{
		Value: v,
		Set:   true,
	}
}

// OptString is optional string.
type OptString struct {
	Value string
	Set   bool
}

// IsSet returns true if OptString was set.
func (o OptString) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptString) Reset() {
	var v string
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptString) SetTo(v string) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptString) Get() (v string, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptString) Or(d string) string {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// Ref: #/components/schemas/Order
type Order struct {
	ID              string      `json:"id"`
	UserId          string      `json:"userId"`
	OrderItems      []OrderItem `json:"orderItems"`
	ShippingAddress Address     `json:"shippingAddress"`
	CartValue       float64     `json:"cartValue"`
	ShippingPrice   float64     `json:"shippingPrice"`
	DiscountAmount  float64     `json:"discountAmount"`
	TotalPrice      float64     `json:"totalPrice"`
	CouponCode      NilString   `json:"couponCode"`
	Status          OrderStatus `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// GetID returns the value of ID.
func (s *Order) GetID() string {
	return s.ID
}

// GetUserId returns the value of UserId.
func (s *Order) GetUserId() string {
	return s.UserId
}

// GetOrderItems returns the value of OrderItems.
func (s *Order) GetOrderItems() []OrderItem {
	return s.OrderItems
}

// GetShippingAddress returns the value of ShippingAddress.
func (s *Order) GetShippingAddress() Address {
	return s.ShippingAddress
}

// GetCartValue returns the value of CartValue.
func (s *Order) GetCartValue() float64 {
	return s.CartValue
}

// GetShippingPrice returns the value of ShippingPrice.
func (s *Order) GetShippingPrice() float64 {
	return s.ShippingPrice
}

// GetDiscountAmount returns the value of DiscountAmount.
func (s *Order) GetDiscountAmount() float64 {
	return s.DiscountAmount
}

// GetTotalPrice returns the value of TotalPrice.
func (s *Order) GetTotalPrice() float64 {
	return s.TotalPrice
}

// GetCouponCode returns the value of CouponCode.
func (s *Order) GetCouponCode() NilString {
	return s.CouponCode
}

// GetStatus returns the value of Status.
func (s *Order) GetStatus() OrderStatus {
	return s.Status
}

// GetCreatedAt returns the value of CreatedAt.
func (s *Order) GetCreatedAt() time.Time {
	return s.CreatedAt
}

// GetUpdatedAt returns the value of UpdatedAt.
func (s *Order) GetUpdatedAt() time.Time {
	return s.UpdatedAt
}

// SetID sets the value of ID.
func (s *Order) SetID(val string) {
	s.ID = val
}

// SetUserId sets the value of UserId.
func (s *Order) SetUserId(val string) {
	s.UserId = val
}

// SetOrderItems sets the value of OrderItems.
func (s *Order) SetOrderItems(val []OrderItem) {
	s.OrderItems = val
}

// SetShippingAddress sets the value of ShippingAddress.
func (s *Order) SetShippingAddress(val Address) {
	s.ShippingAddress = val
}

// SetCartValue sets the value of CartValue.
func (s *Order) SetCartValue(val float64) {
	s.CartValue = val
}

// SetShippingPrice sets the value of ShippingPrice.
func (s *Order) SetShippingPrice(val float64) {
	s.ShippingPrice = val
}

// SetDiscountAmount sets the value of DiscountAmount.
func (s *Order) SetDiscountAmount(val float64) {
	s.DiscountAmount = val
}

// SetTotalPrice sets the value of TotalPrice.
func (s *Order) SetTotalPrice(val float64) {
	s.TotalPrice = val
}

// SetCouponCode sets the value of CouponCode.
func (s *Order) SetCouponCode(val NilString) {
	s.CouponCode = val
}

// SetStatus sets the value of Status.
func (s *Order) SetStatus(val OrderStatus) {
	s.Status = val
}

// SetCreatedAt sets the value of CreatedAt.
func (s *Order) SetCreatedAt(val time.Time) {
	s.CreatedAt = val
}

// SetUpdatedAt sets the value of UpdatedAt.
func (s *Order) SetUpdatedAt(val time.Time) {
	s.UpdatedAt = val
}

// Ref: #/components/schemas/OrderItem
type OrderItem struct {
	Product  string  `json:"product"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// GetProduct returns the value of Product.
func (s *OrderItem) GetProduct() string {
	return s.Product
}

// GetName returns the value of Name.
func (s *OrderItem) GetName() string {
	return s.Name
}

// GetQuantity returns the value of Quantity.
func (s *OrderItem) GetQuantity() int {
	return s.Quantity
}

// GetPrice returns the value of Price.
func (s *OrderItem) GetPrice() float64 {
	return s.Price
}

// SetProduct sets the value of Product.
func (s *OrderItem) SetProduct(val string) {
	s.Product = val
}

// SetName sets the value of Name.
func (s *OrderItem) SetName(val string) {
	s.Name = val
}

// SetQuantity sets the value of Quantity.
func (s *OrderItem) SetQuantity(val int) {
	s.Quantity = val
}

// SetPrice sets the value of Price.
func (s *OrderItem) SetPrice(val float64) {
	s.Price = val
}

// Ref: #/components/schemas/OrderItemInput
type OrderItemInput struct {
	Product OptString `json:"product"`
	// Alias of product.
	ProductId OptString `json:"productId"`
	Quantity  int       `json:"quantity"`
	// Accepted from older clients and ignored.
	Price OptFloat64 `json:"price"`
	Name  OptString  `json:"name"`
}

// GetProduct returns the value of Product.
func (s *OrderItemInput) GetProduct() OptString {
	return s.Product
}

// GetProductId returns the value of ProductId.
func (s *OrderItemInput) GetProductId() OptString {
	return s.ProductId
}

// GetQuantity returns the value of Quantity.
func (s *OrderItemInput) GetQuantity() int {
	return s.Quantity
}

// GetPrice returns the value of Price.
func (s *OrderItemInput) GetPrice() OptFloat64 {
	return s.Price
}

// GetName returns the value of Name.
func (s *OrderItemInput) GetName() OptString {
	return s.Name
}

// SetProduct sets the value of Product.
func (s *OrderItemInput) SetProduct(val OptString) {
	s.Product = val
}

// SetProductId sets the value of ProductId.
func (s *OrderItemInput) SetProductId(val OptString) {
	s.ProductId = val
}

// SetQuantity sets the value of Quantity.
func (s *OrderItemInput) SetQuantity(val int) {
	s.Quantity = val
}

// SetPrice sets the value of Price.
func (s *OrderItemInput) SetPrice(val OptFloat64) {
	s.Price = val
}

// SetName sets the value of Name.
func (s *OrderItemInput) SetName(val OptString) {
	s.Name = val
}

// Ref: #/components/schemas/OrderStatus
type OrderStatus string

const (
	OrderStatusPending           OrderStatus = "pending"
	OrderStatusProcessing        OrderStatus = "processing"
	OrderStatusShipped           OrderStatus = "shipped"
	OrderStatusDelivered         OrderStatus = "delivered"
	OrderStatusCancelled         OrderStatus = "cancelled"
	OrderStatusExchangeRequested OrderStatus = "exchange_requested"
	OrderStatusExchangeApproved  OrderStatus = "exchange_approved"
	OrderStatusExchanged         OrderStatus = "exchanged"
)

// AllValues returns all OrderStatus values.
func (OrderStatus) AllValues() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
		OrderStatusExchangeRequested,
		OrderStatusExchangeApproved,
		OrderStatusExchanged,
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s OrderStatus) MarshalText() ([]byte, error) {
	switch s {
	case OrderStatusPending:
		return []byte(s), nil
	case OrderStatusProcessing:
		return []byte(s), nil
	case OrderStatusShipped:
		return []byte(s), nil
	case OrderStatusDelivered:
		return []byte(s), nil
	case OrderStatusCancelled:
		return []byte(s), nil
	case OrderStatusExchangeRequested:
		return []byte(s), nil
	case OrderStatusExchangeApproved:
		return []byte(s), nil
	case OrderStatusExchanged:
		return []byte(s), nil
	default:
		return nil, errors.Errorf("invalid value: %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *OrderStatus) UnmarshalText(data []byte) error {
	switch OrderStatus(data) {
	case OrderStatusPending:
		*s = OrderStatusPending
		return nil
	case OrderStatusProcessing:
		*s = OrderStatusProcessing
		return nil
	case OrderStatusShipped:
		*s = OrderStatusShipped
		return nil
	case OrderStatusDelivered:
		*s = OrderStatusDelivered
		return nil
	case OrderStatusCancelled:
		*s = OrderStatusCancelled
		return nil
	case OrderStatusExchangeRequested:
		*s = OrderStatusExchangeRequested
		return nil
	case OrderStatusExchangeApproved:
		*s = OrderStatusExchangeApproved
		return nil
	case OrderStatusExchanged:
		*s = OrderStatusExchanged
		return nil
	default:
		return errors.Errorf("invalid value: %q", data)
	}
}

// Ref: #/components/schemas/PlaceOrderRequest
type PlaceOrderRequest struct {
	// When omitted the stored cart is ordered and cleared.
	OrderItems      []OrderItemInput `json:"orderItems"`
	ShippingAddress Address          `json:"shippingAddress"`
	// Client-computed total, logged when it differs and never charged.
	TotalPrice OptFloat64 `json:"totalPrice"`
	CouponCode OptString  `json:"couponCode"`
}

// GetOrderItems returns the value of OrderItems.
func (s *PlaceOrderRequest) GetOrderItems() []OrderItemInput {
	return s.OrderItems
}

// GetShippingAddress returns the value of ShippingAddress.
func (s *PlaceOrderRequest) GetShippingAddress() Address {
	return s.ShippingAddress
}

// GetTotalPrice returns the value of TotalPrice.
func (s *PlaceOrderRequest) GetTotalPrice() OptFloat64 {
	return s.TotalPrice
}

// GetCouponCode returns the value of CouponCode.
func (s *PlaceOrderRequest) GetCouponCode() OptString {
	return s.CouponCode
}

// SetOrderItems sets the value of OrderItems.
func (s *PlaceOrderRequest) SetOrderItems(val []OrderItemInput) {
	s.OrderItems = val
}

// SetShippingAddress sets the value of ShippingAddress.
func (s *PlaceOrderRequest) SetShippingAddress(val Address) {
	s.ShippingAddress = val
}

// SetTotalPrice sets the value of TotalPrice.
func (s *PlaceOrderRequest) SetTotalPrice(val OptFloat64) {
	s.TotalPrice = val
}

// SetCouponCode sets the value of CouponCode.
func (s *PlaceOrderRequest) SetCouponCode(val OptString) {
	s.CouponCode = val
}

// Ref: #/components/schemas/Product
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Stock    int     `json:"stock"`
}

// GetID returns the value of ID.
func (s *Product) GetID() string {
	return s.ID
}

// GetName returns the value of Name.
func (s *Product) GetName() string {
	return s.Name
}

// GetPrice returns the value of Price.
func (s *Product) GetPrice() float64 {
	return s.Price
}

// GetCategory returns the value of Category.
func (s *Product) GetCategory() string {
	return s.Category
}

// GetStock returns the value of Stock.
func (s *Product) GetStock() int {
	return s.Stock
}

// SetID sets the value of ID.
func (s *Product) SetID(val string) {
	s.ID = val
}

// SetName sets the value of Name.
func (s *Product) SetName(val string) {
	s.Name = val
}

// SetPrice sets the value of Price.
func (s *Product) SetPrice(val float64) {
	s.Price = val
}

// SetCategory sets the value of Category.
func (s *Product) SetCategory(val string) {
	s.Category = val
}

// SetStock sets the value of Stock.
func (s *Product) SetStock(val int) {
	s.Stock = val
}

// Ref: #/components/schemas/StatusRequest
type StatusRequest struct {
	Status OrderStatus `json:"status"`
}

// GetStatus returns the value of Status.
func (s *StatusRequest) GetStatus() OrderStatus {
	return s.Status
}

// SetStatus sets the value of Status.
func (s *StatusRequest) SetStatus(val OrderStatus) {
	s.Status = val
}

// Partial update. Absent fields are left unchanged.
// Ref: #/components/schemas/UpdateCouponRequest
type UpdateCouponRequest struct {
	Code          OptString       `json:"code"`
	Description   OptString       `json:"description"`
	DiscountType  OptDiscountType `json:"discountType"`
	DiscountValue OptFloat64      `json:"discountValue"`
	MinOrderValue OptFloat64      `json:"minOrderValue"`
	// Null removes the expiry.
	ExpiresAt OptNilDateTime `json:"expiresAt"`
	// Null lifts the ceiling.
	UsageLimit       OptNilInt `json:"usageLimit"`
	PerUserLimit     OptInt    `json:"perUserLimit"`
	IsActive         OptBool   `json:"isActive"`
	IsFirstOrderOnly OptBool   `json:"isFirstOrderOnly"`
	// Replaces the allow list; an empty list lifts the restriction.
	AllowedUsers []string `json:"allowedUsers"`
	// Replaces the allow list with this account; empty lifts the restriction.
	RestrictedToUserEmail OptString `json:"restrictedToUserEmail"`
	ResetUsageCount       OptBool   `json:"resetUsageCount"`
}

// GetCode returns the value of Code.
func (s *UpdateCouponRequest) GetCode() OptString {
	return s.Code
}

// GetDescription returns the value of Description.
func (s *UpdateCouponRequest) GetDescription() OptString {
	return s.Description
}

// GetDiscountType returns the value of DiscountType.
func (s *UpdateCouponRequest) GetDiscountType() OptDiscountType {
	return s.DiscountType
}

// GetDiscountValue returns the value of DiscountValue.
func (s *UpdateCouponRequest) GetDiscountValue() OptFloat64 {
	return s.DiscountValue
}

// GetMinOrderValue returns the value of MinOrderValue.
func (s *UpdateCouponRequest) GetMinOrderValue() OptFloat64 {
	return s.MinOrderValue
}

// GetExpiresAt returns the value of ExpiresAt.
func (s *UpdateCouponRequest) GetExpiresAt() OptNilDateTime {
	return s.ExpiresAt
}

// GetUsageLimit returns the value of UsageLimit.
func (s *UpdateCouponRequest) GetUsageLimit() OptNilInt {
	return s.UsageLimit
}

// GetPerUserLimit returns the value of PerUserLimit.
func (s *UpdateCouponRequest) GetPerUserLimit() OptInt {
	return s.PerUserLimit
}

// GetIsActive returns the value of IsActive.
func (s *UpdateCouponRequest) GetIsActive() OptBool {
	return s.IsActive
}

// GetIsFirstOrderOnly returns the value of IsFirstOrderOnly.
func (s *UpdateCouponRequest) GetIsFirstOrderOnly() OptBool {
	return s.IsFirstOrderOnly
}

// GetAllowedUsers returns the value of AllowedUsers.
func (s *UpdateCouponRequest) GetAllowedUsers() []string {
	return s.AllowedUsers
}

// GetRestrictedToUserEmail returns the value of RestrictedToUserEmail.
func (s *UpdateCouponRequest) GetRestrictedToUserEmail() OptString {
	return s.RestrictedToUserEmail
}

// GetResetUsageCount returns the value of ResetUsageCount.
func (s *UpdateCouponRequest) GetResetUsageCount() OptBool {
	return s.ResetUsageCount
}

// SetCode sets the value of Code.
func (s *UpdateCouponRequest) SetCode(val OptString) {
	s.Code = val
}

// SetDescription sets the value of Description.
func (s *UpdateCouponRequest) SetDescription(val OptString) {
	s.Description = val
}

// SetDiscountType sets the value of DiscountType.
func (s *UpdateCouponRequest) SetDiscountType(val OptDiscountType) {
	s.DiscountType = val
}

// SetDiscountValue sets the value of DiscountValue.
func (s *UpdateCouponRequest) SetDiscountValue(val OptFloat64) {
	s.DiscountValue = val
}

// SetMinOrderValue sets the value of MinOrderValue.
func (s *UpdateCouponRequest) SetMinOrderValue(val OptFloat64) {
	s.MinOrderValue = val
}

// SetExpiresAt sets the value of ExpiresAt.
func (s *UpdateCouponRequest) SetExpiresAt(val OptNilDateTime) {
	s.ExpiresAt = val
}

// SetUsageLimit sets the value of UsageLimit.
func (s *UpdateCouponRequest) SetUsageLimit(val OptNilInt) {
	s.UsageLimit = val
}

// SetPerUserLimit sets the value of PerUserLimit.
func (s *UpdateCouponRequest) SetPerUserLimit(val OptInt) {
	s.PerUserLimit = val
}

// SetIsActive sets the value of IsActive.
func (s *UpdateCouponRequest) SetIsActive(val OptBool) {
	s.IsActive = val
}

// SetIsFirstOrderOnly sets the value of IsFirstOrderOnly.
func (s *UpdateCouponRequest) SetIsFirstOrderOnly(val OptBool) {
	s.IsFirstOrderOnly = val
}

// SetAllowedUsers sets the value of AllowedUsers.
func (s *UpdateCouponRequest) SetAllowedUsers(val []string) {
	s.AllowedUsers = val
}

// SetRestrictedToUserEmail sets the value of RestrictedToUserEmail.
func (s *UpdateCouponRequest) SetRestrictedToUserEmail(val OptString) {
	s.RestrictedToUserEmail = val
}

// SetResetUsageCount sets the value of ResetUsageCount.
func (s *UpdateCouponRequest) SetResetUsageCount(val OptBool) {
	s.ResetUsageCount = val
}

// Ref: #/components/schemas/ValidateCouponRequest
type ValidateCouponRequest struct {
	Code       string  `json:"code"`
	CartValue  float64 `json:"cartValue"`
	OrderTotal float64 `json:"orderTotal"`
}

// GetCode returns the value of Code.
func (s *ValidateCouponRequest) GetCode() string {
	return s.Code
}

// GetCartValue returns the value of CartValue.
func (s *ValidateCouponRequest) GetCartValue() float64 {
	return s.CartValue
}

// GetOrderTotal returns the value of OrderTotal.
func (s *ValidateCouponRequest) GetOrderTotal() float64 {
	return s.OrderTotal
}

// SetCode sets the value of Code.
func (s *ValidateCouponRequest) SetCode(val string) {
	s.Code = val
}

// SetCartValue sets the value of CartValue.
func (s *ValidateCouponRequest) SetCartValue(val float64) {
	s.CartValue = val
}

// SetOrderTotal sets the value of OrderTotal.
func (s *ValidateCouponRequest) SetOrderTotal(val float64) {
	s.OrderTotal = val
}
