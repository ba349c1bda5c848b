// Code generated by ogen, DO NOT EDIT.

package oas

// OperationName is the ogen operation name
type OperationName = string

const (
	AddCartItemOperation       OperationName = "AddCartItem"
	ClearCartOperation         OperationName = "ClearCart"
	CreateCouponOperation      OperationName = "CreateCoupon"
	DeleteCouponOperation      OperationName = "DeleteCoupon"
	GetCartOperation           OperationName = "GetCart"
	GetOrderOperation          OperationName = "GetOrder"
	ListAllOrdersOperation     OperationName = "ListAllOrders"
	ListCouponsOperation       OperationName = "ListCoupons"
	ListMyOrdersOperation      OperationName = "ListMyOrders"
	ListProductsOperation      OperationName = "ListProducts"
	PlaceOrderOperation        OperationName = "PlaceOrder"
	RemoveCartItemOperation    OperationName = "RemoveCartItem"
	RequestExchangeOperation   OperationName = "RequestExchange"
	UpdateCartItemOperation    OperationName = "UpdateCartItem"
	UpdateCouponOperation      OperationName = "UpdateCoupon"
	UpdateOrderStatusOperation OperationName = "UpdateOrderStatus"
	ValidateCouponOperation    OperationName = "ValidateCoupon"
)
